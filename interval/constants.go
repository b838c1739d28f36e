package interval

func mustNew(q Quality, degree int) Interval {
	i, err := New(q, degree)
	if err != nil {
		panic(err)
	}
	return i
}

var (
	PerfectUnison     = mustNew(Perfect, 1)
	AugmentedUnison   = mustNew(Augmented, 1)
	MinorSecond       = mustNew(Minor, 2)
	MajorSecond       = mustNew(Major, 2)
	AugmentedSecond   = mustNew(Augmented, 2)
	MinorThird        = mustNew(Minor, 3)
	MajorThird        = mustNew(Major, 3)
	PerfectFourth     = mustNew(Perfect, 4)
	AugmentedFourth   = mustNew(Augmented, 4)
	DiminishedFifth   = mustNew(Diminished, 5)
	PerfectFifth      = mustNew(Perfect, 5)
	AugmentedFifth    = mustNew(Augmented, 5)
	MinorSixth        = mustNew(Minor, 6)
	MajorSixth        = mustNew(Major, 6)
	DiminishedSeventh = mustNew(Diminished, 7)
	MinorSeventh      = mustNew(Minor, 7)
	MajorSeventh      = mustNew(Major, 7)
	Octave            = mustNew(Perfect, 8)
	MinorNinth        = mustNew(Minor, 9)
	MajorNinth        = mustNew(Major, 9)
	AugmentedNinth    = mustNew(Augmented, 9)
	PerfectEleventh   = mustNew(Perfect, 11)
	AugmentedEleventh = mustNew(Augmented, 11)
	MinorThirteenth   = mustNew(Minor, 13)
	MajorThirteenth   = mustNew(Major, 13)
)
