// Package db looks up per-file metadata (artist, title, ...) kept in DynamoDB.
package db

import (
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/pkg/errors"

	"github.com/jsphweid/tonal/constants"
	"github.com/jsphweid/tonal/model"
)

// MaxBatch is the most keys sent in one BatchGetItem call.
const MaxBatch = 10

type MetadataClient struct {
	api   dynamodbiface.DynamoDBAPI
	table string
}

func NewMetadataClient(endpoint string) (*MetadataClient, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return NewMetadataClientWithAPI(dynamodb.New(sess), constants.MetadataTable), nil
}

func NewMetadataClientWithAPI(api dynamodbiface.DynamoDBAPI, table string) *MetadataClient {
	return &MetadataClient{api: api, table: table}
}

func stringAttr(item map[string]*dynamodb.AttributeValue, key string) string {
	if v, ok := item[key]; ok && v.S != nil {
		return *v.S
	}
	return ""
}

func (c *MetadataClient) GetMidiMetadatas(filenames []string) (map[string]model.MidiMetadata, error) {
	if len(filenames) > MaxBatch {
		return nil, errors.Errorf("at most %d filenames per lookup, got %d", MaxBatch, len(filenames))
	}

	res := make(map[string]model.MidiMetadata)
	if len(filenames) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(filename)},
		})
	}

	out, err := c.api.BatchGetItem(&dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			c.table: {Keys: keys},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "error from DynamoDB")
	}

	for _, v := range out.Responses[c.table] {
		var s model.MidiMetadata
		if y, ok := v["Year"]; ok && y.N != nil {
			year, err := strconv.ParseUint(*y.N, 10, 32)
			if err == nil {
				s.Year = uint(year)
			}
		}
		s.Artist = stringAttr(v, "Artist")
		s.Release = stringAttr(v, "Release")
		s.Title = stringAttr(v, "Title")
		res[stringAttr(v, "PK")] = s
	}
	return res, nil
}

// HasMetadata reports whether the table knows about filename.
func (c *MetadataClient) HasMetadata(filename string) (bool, error) {
	metadatas, err := c.GetMidiMetadatas([]string{filename})
	if err != nil {
		return false, err
	}
	_, ok := metadatas[filename]
	return ok, nil
}
