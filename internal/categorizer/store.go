package categorizer

import (
	"fmt"
	"os"

	"alebedev/statement-parser/internal/models"

	"gopkg.in/yaml.v3"
)

// keywordFile is the on-disk shape of a keyword override file:
//
//	categories:
//	  - name: "Еда"
//	    keywords: ["магнит", "кафе"]
type keywordFile struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// LoadKeywordConfig reads a keyword override file. Every category name in
// the file must belong to the closed category set; the categorization
// contract does not allow new labels to appear through configuration.
func LoadKeywordConfig(path string) ([]CategoryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keyword config: %w", err)
	}

	var f keywordFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse keyword config: %w", err)
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("keyword config %s defines no categories", path)
	}

	for _, c := range f.Categories {
		if !models.IsValidCategory(c.Name) {
			return nil, fmt.Errorf("keyword config %s: unknown category %q", path, c.Name)
		}
		if c.Name == models.CategoryIncome {
			return nil, fmt.Errorf("keyword config %s: %q is assigned by the income rule, not keywords", path, c.Name)
		}
	}

	return f.Categories, nil
}
