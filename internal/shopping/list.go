// Package shopping persists the shopping list as YAML under
// ~/.local/share/pantry/shopping.yaml.
package shopping

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/five82/pantry/internal/recipes"
)

const defaultListPath = "~/.local/share/pantry/shopping.yaml"

// Entry is one recipe on the list together with its ingredients.
type Entry struct {
	RecipeID    string    `yaml:"recipe_id"`
	Title       string    `yaml:"title"`
	Ingredients []string  `yaml:"ingredients,omitempty"`
	AddedAt     time.Time `yaml:"added_at"`
}

// List is the ordered shopping list. The zero value is empty and usable.
type List struct {
	Entries []Entry `yaml:"entries"`
}

// DefaultPath returns the default list file path.
func DefaultPath() string {
	return defaultListPath
}

// Load reads the list at path. A missing file yields an empty list.
func Load(path string) (*List, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &List{}, nil
		}
		return nil, fmt.Errorf("read shopping list: %w", err)
	}
	var l List
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse shopping list: %w", err)
	}
	return &l, nil
}

// Save writes the list to path, creating directories as needed.
func (l *List) Save(path string) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create shopping dir: %w", err)
	}
	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("marshal shopping list: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write shopping list: %w", err)
	}
	return nil
}

// Contains reports whether the recipe is on the list.
func (l *List) Contains(recipeID string) bool {
	return l.index(recipeID) >= 0
}

// Add appends the recipe unless it is already present. It reports whether
// the list changed.
func (l *List) Add(r recipes.Recipe, now time.Time) bool {
	if l.Contains(r.ID) {
		return false
	}
	l.Entries = append(l.Entries, Entry{
		RecipeID:    r.ID,
		Title:       r.Title,
		Ingredients: append([]string(nil), r.Ingredients...),
		AddedAt:     now.UTC(),
	})
	return true
}

// Remove deletes the recipe. It reports whether the list changed.
func (l *List) Remove(recipeID string) bool {
	i := l.index(recipeID)
	if i < 0 {
		return false
	}
	l.Entries = append(l.Entries[:i], l.Entries[i+1:]...)
	return true
}

// Toggle adds the recipe when absent and removes it otherwise. It reports
// whether the recipe is on the list afterwards.
func (l *List) Toggle(r recipes.Recipe, now time.Time) bool {
	if l.Remove(r.ID) {
		return false
	}
	l.Add(r, now)
	return true
}

// Len returns the number of recipes on the list.
func (l *List) Len() int {
	return len(l.Entries)
}

// Ingredients merges ingredients across entries, case-insensitively, and
// counts how many recipes need each one. Order follows first appearance.
func (l *List) Ingredients() []Item {
	var out []Item
	seen := map[string]int{}
	for _, e := range l.Entries {
		for _, ing := range e.Ingredients {
			key := strings.ToLower(strings.TrimSpace(ing))
			if key == "" {
				continue
			}
			if i, ok := seen[key]; ok {
				out[i].Count++
				continue
			}
			seen[key] = len(out)
			out = append(out, Item{Name: strings.TrimSpace(ing), Count: 1})
		}
	}
	return out
}

// Item is one merged ingredient line.
type Item struct {
	Name  string
	Count int
}

func (l *List) index(recipeID string) int {
	for i, e := range l.Entries {
		if e.RecipeID == recipeID {
			return i
		}
	}
	return -1
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultListPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
