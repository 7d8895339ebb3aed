package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Section is one tab of the practice interface.
type Section struct {
	Title         string
	ExpectedCount int
	Items         []string
	Icon          string
}

// Row is a single display row of a section. Blank rows are placeholders
// padded up to the section's expected count.
type Row struct {
	Index int
	Text  string
}

// Rows returns all provided items plus empty placeholders when the list is
// shorter than the expected count. A list longer than the expected count is
// rendered in full, never truncated.
func (s *Section) Rows() []Row {
	n := len(s.Items)
	if s.ExpectedCount > n {
		n = s.ExpectedCount
	}

	rows := make([]Row, n)
	for i := 0; i < n; i++ {
		rows[i] = Row{Index: i}
		if i < len(s.Items) {
			rows[i].Text = s.Items[i]
		}
	}
	return rows
}

// Catalog is the ordered set of sections for one lesson.
type Catalog struct {
	LessonName string
	Sections   []Section
}

// ItemID builds the identifier used by the reveal tracker and the playback
// controller: "{tab}-{item}".
func ItemID(tab, item int) string {
	return fmt.Sprintf("%d-%d", tab, item)
}

// lessonFile is the YAML shape of a lesson. Absent lists default to empty.
type lessonFile struct {
	Name          string   `yaml:"name"`
	Sounds        []string `yaml:"sounds"`
	RealWords     []string `yaml:"real_words"`
	WordElements  []string `yaml:"word_elements"`
	NonsenseWords []string `yaml:"nonsense_words"`
	Phrases       []string `yaml:"phrases"`
	Sentences     []string `yaml:"sentences"`
}

// section layout: title, expected row count and toolbar icon name per tab.
var sectionLayout = []struct {
	title string
	count int
	icon  string
}{
	{"Sounds", 10, "volumeUp"},
	{"Real Words", 10, "document"},
	{"Word Elements", 8, "grid"},
	{"Nonsense Words", 10, "question"},
	{"Phrases", 6, "list"},
	{"Sentences", 5, "documentCreate"},
}

// Load reads a lesson file and builds the catalog for it.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lesson file: %w", err)
	}

	var lesson lessonFile
	if err := yaml.Unmarshal(data, &lesson); err != nil {
		return nil, fmt.Errorf("failed to parse lesson file %s: %w", path, err)
	}

	return fromLesson(&lesson), nil
}

func fromLesson(lesson *lessonFile) *Catalog {
	lists := [][]string{
		lesson.Sounds,
		lesson.RealWords,
		lesson.WordElements,
		lesson.NonsenseWords,
		lesson.Phrases,
		lesson.Sentences,
	}

	c := &Catalog{LessonName: lesson.Name}
	for i, layout := range sectionLayout {
		c.Sections = append(c.Sections, Section{
			Title:         layout.title,
			ExpectedCount: layout.count,
			Items:         lists[i],
			Icon:          layout.icon,
		})
	}
	return c
}

// Default returns the built-in demo lesson used when no lesson file is
// configured.
func Default() *Catalog {
	return fromLesson(&lessonFile{
		Name:          "Demo Lesson",
		Sounds:        []string{"m", "s", "a", "t", "sh", "ch"},
		RealWords:     []string{"cat", "ship", "rain", "night", "queen", "bird"},
		WordElements:  []string{"ing", "ed", "un", "re"},
		NonsenseWords: []string{"zat", "blim", "quop", "sheg"},
		Phrases:       []string{"a red hat", "on the ship"},
		Sentences:     []string{"The cat sat on the mat."},
	})
}
