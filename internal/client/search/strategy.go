package search

// Source is where the primary country list comes from.
type Source int

// Primary sources
const (
	SourceDataset Source = iota
	SourceName
	SourceRegion
	SourceLanguage
)

func (s Source) String() string {
	switch s {
	case SourceName:
		return "name"
	case SourceRegion:
		return "region"
	case SourceLanguage:
		return "language"
	default:
		return "dataset"
	}
}

// Refinement flags the client-side filters applied after the primary fetch.
type Refinement struct {
	Query    bool
	Region   bool
	Language bool
}

// Strategy is one row of the source-selection table.
type Strategy struct {
	applies func(c Criteria) bool
	Refine  Refinement
	Source  Source
}

// strategies порядок важен: первая подходящая строка выигрывает
var strategies = []Strategy{
	{
		Source:  SourceName,
		applies: func(c Criteria) bool { return c.Query != "" },
		// каталог ищет и по официальным/альтернативным именам, поэтому query тоже уточняем
		Refine: Refinement{Query: true, Region: true, Language: true},
	},
	{
		Source:  SourceRegion,
		applies: func(c Criteria) bool { return c.Region != "" },
		Refine:  Refinement{Language: true},
	},
	{
		// ответ /lang уже отфильтрован каталогом без учета регистра
		Source:  SourceLanguage,
		applies: func(c Criteria) bool { return c.Language != "" },
	},
	{
		Source:  SourceDataset,
		applies: func(Criteria) bool { return true },
	},
}

// SelectStrategy returns the first strategy matching c.
func SelectStrategy(c Criteria) Strategy {
	c = c.Normalize()
	for _, s := range strategies {
		if s.applies(c) {
			return s
		}
	}
	return strategies[len(strategies)-1]
}
