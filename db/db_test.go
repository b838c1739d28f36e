package db

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/tonal/model"
)

type fakeDynamo struct {
	dynamodbiface.DynamoDBAPI
	items map[string]map[string]*dynamodb.AttributeValue
	calls int
	err   error
}

func (f *fakeDynamo) BatchGetItem(in *dynamodb.BatchGetItemInput) (*dynamodb.BatchGetItemOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := &dynamodb.BatchGetItemOutput{Responses: map[string][]map[string]*dynamodb.AttributeValue{}}
	for table, ka := range in.RequestItems {
		for _, key := range ka.Keys {
			if item, ok := f.items[*key["PK"].S]; ok {
				out.Responses[table] = append(out.Responses[table], item)
			}
		}
	}
	return out, nil
}

func fake() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]*dynamodb.AttributeValue{
		"a.mid": {
			"PK":      {S: aws.String("a.mid")},
			"Artist":  {S: aws.String("Someone")},
			"Release": {S: aws.String("Record")},
			"Title":   {S: aws.String("Song")},
			"Year":    {N: aws.String("1999")},
		},
		"b.mid": {
			"PK":    {S: aws.String("b.mid")},
			"Title": {S: aws.String("Untitled")},
		},
	}}
}

func TestGetMidiMetadatas(t *testing.T) {
	assert := assert.New(t)
	api := fake()
	c := NewMetadataClientWithAPI(api, "meta")

	res, err := c.GetMidiMetadatas([]string{"a.mid", "b.mid", "c.mid"})
	assert.Nil(err)
	assert.Equal(map[string]model.MidiMetadata{
		"a.mid": {Year: 1999, Artist: "Someone", Release: "Record", Title: "Song"},
		"b.mid": {Title: "Untitled"},
	}, res)

	res, err = c.GetMidiMetadatas(nil)
	assert.Nil(err)
	assert.Empty(res)
	assert.Equal(1, api.calls)

	_, err = c.GetMidiMetadatas(make([]string, MaxBatch+1))
	assert.NotNil(err)
}

func TestHasMetadata(t *testing.T) {
	assert := assert.New(t)
	api := fake()
	c := NewMetadataClientWithAPI(api, "meta")

	ok, err := c.HasMetadata("a.mid")
	assert.Nil(err)
	assert.True(ok)

	ok, err = c.HasMetadata("zzz.mid")
	assert.Nil(err)
	assert.False(ok)

	api.err = errors.New("throttled")
	_, err = c.HasMetadata("a.mid")
	assert.ErrorContains(err, "throttled")
}
