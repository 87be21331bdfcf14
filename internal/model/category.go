package model

import (
	"bytes"
	"encoding/json"
	"sort"
)

type Category string

const (
	CategoryBeach           Category = "beach"
	CategoryMountain        Category = "mountain"
	CategoryCulture         Category = "culture"
	CategoryFood            Category = "food"
	CategoryBudget          Category = "budget"
	CategoryWarmClimate     Category = "warm_climate"
	CategoryOutdoors        Category = "outdoors"
	CategoryUrban           Category = "urban"
	CategoryHistory         Category = "history"
	CategoryNightlife       Category = "nightlife"
	CategoryTransport       Category = "transport"
	CategoryThemeParks      Category = "theme_parks"
	CategoryLowTourism      Category = "low_tourism"
	CategoryWaterSports     Category = "water_sports"
	CategoryFamily          Category = "family"
	CategoryRomantic        Category = "romantic"
	CategoryShopping        Category = "shopping"
	CategoryAdventure       Category = "adventure"
	CategoryRelaxation      Category = "relaxation"
	CategorySustainability  Category = "sustainability"
	CategoryEurope          Category = "europe"
	CategoryAsia            Category = "asia"
	CategoryAmericas        Category = "americas"
	CategoryExotic          Category = "exotic"
	CategorySpanishLanguage Category = "spanish_language"
)

var knownCategories = map[Category]struct{}{
	CategoryBeach: {}, CategoryMountain: {}, CategoryCulture: {}, CategoryFood: {},
	CategoryBudget: {}, CategoryWarmClimate: {}, CategoryOutdoors: {}, CategoryUrban: {},
	CategoryHistory: {}, CategoryNightlife: {}, CategoryTransport: {}, CategoryThemeParks: {},
	CategoryLowTourism: {}, CategoryWaterSports: {}, CategoryFamily: {}, CategoryRomantic: {},
	CategoryShopping: {}, CategoryAdventure: {}, CategoryRelaxation: {}, CategorySustainability: {},
	CategoryEurope: {}, CategoryAsia: {}, CategoryAmericas: {}, CategoryExotic: {},
	CategorySpanishLanguage: {},
}

func (c Category) Known() bool {
	_, ok := knownCategories[c]
	return ok
}

// CategorySet holds the categories a destination satisfies.
// A category missing from the set is treated as false.
type CategorySet map[Category]struct{}

func NewCategorySet(categories ...Category) CategorySet {
	s := make(CategorySet, len(categories))
	for _, c := range categories {
		s[c] = struct{}{}
	}
	return s
}

// CategorySetFromAttributes keeps only the categories flagged true.
func CategorySetFromAttributes(attrs map[string]bool) CategorySet {
	s := make(CategorySet, len(attrs))
	for k, v := range attrs {
		if v {
			s[Category(k)] = struct{}{}
		}
	}
	return s
}

func (s CategorySet) Has(c Category) bool {
	_, ok := s[c]
	return ok
}

// Slice returns the categories sorted, for storage and stable output.
func (s CategorySet) Slice() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, string(c))
	}
	sort.Strings(out)
	return out
}

func (s CategorySet) Unknown() []Category {
	var out []Category
	for c := range s {
		if !c.Known() {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s CategorySet) MarshalJSON() ([]byte, error) {
	attrs := make(map[string]bool, len(s))
	for c := range s {
		attrs[string(c)] = true
	}
	return json.Marshal(attrs)
}

func (s *CategorySet) UnmarshalJSON(data []byte) error {
	var attrs map[string]bool
	if err := json.Unmarshal(data, &attrs); err != nil {
		return err
	}
	*s = CategorySetFromAttributes(attrs)
	return nil
}

// CategoryTally counts unanimous-yes questions per category and remembers
// the order in which categories were first seen.
type CategoryTally struct {
	order  []Category
	counts map[Category]int
}

func NewCategoryTally() *CategoryTally {
	return &CategoryTally{counts: make(map[Category]int)}
}

func (t *CategoryTally) Add(c Category) {
	if _, ok := t.counts[c]; !ok {
		t.order = append(t.order, c)
	}
	t.counts[c]++
}

func (t *CategoryTally) Count(c Category) int {
	if t == nil {
		return 0
	}
	return t.counts[c]
}

func (t *CategoryTally) Categories() []Category {
	if t == nil {
		return nil
	}
	out := make([]Category, len(t.order))
	copy(out, t.order)
	return out
}

func (t *CategoryTally) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

func (t *CategoryTally) Map() map[Category]int {
	out := make(map[Category]int, t.Len())
	if t == nil {
		return out
	}
	for c, n := range t.counts {
		out[c] = n
	}
	return out
}

// MarshalJSON writes an object whose keys keep first-appearance order.
func (t *CategoryTally) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range t.Categories() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(c))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(t.counts[c])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (t *CategoryTally) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	t.order = nil
	t.counts = make(map[Category]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var n int
		if err := dec.Decode(&n); err != nil {
			return err
		}
		c := Category(key)
		if _, ok := t.counts[c]; !ok {
			t.order = append(t.order, c)
		}
		t.counts[c] = n
	}
	_, err := dec.Token()
	return err
}
