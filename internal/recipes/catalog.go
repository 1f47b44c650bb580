package recipes

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	defaultSuggestionLimit = 8
	defaultPageSize        = 12
)

// Catalog is an in-process Service over a fixed recipe set. It backs the
// --demo mode and the UI tests.
type Catalog struct {
	recipes []Recipe
	session Session

	// Latency delays every call, honouring context cancellation.
	Latency time.Duration
	// SuggestionLimit caps GetSuggestions results; zero uses the default.
	SuggestionLimit int
}

var _ Service = (*Catalog)(nil)

// NewCatalog returns a Catalog over recipes. A nil slice uses the bundled set.
func NewCatalog(recipes []Recipe) *Catalog {
	if recipes == nil {
		recipes = DemoRecipes()
	}
	dup := make([]Recipe, len(recipes))
	copy(dup, recipes)
	return &Catalog{
		recipes: dup,
		session: Session{Authenticated: true, User: "demo"},
	}
}

// GetSuggestions fuzzy-matches query against recipe titles.
func (c *Catalog) GetSuggestions(ctx context.Context, query string) ([]Suggestion, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	titles := make([]string, len(c.recipes))
	for i, r := range c.recipes {
		titles[i] = r.Title
	}
	ranks := fuzzy.RankFindFold(query, titles)
	sort.Stable(ranks)

	limit := c.SuggestionLimit
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}
	out := make([]Suggestion, 0, min(limit, len(ranks)))
	for _, rank := range ranks {
		if len(out) == limit {
			break
		}
		r := c.recipes[rank.OriginalIndex]
		out = append(out, Suggestion{ID: r.ID, Title: r.Title, Category: r.Category})
	}
	return out, nil
}

// ListRecipes filters by a case-insensitive substring and paginates.
func (c *Catalog) ListRecipes(ctx context.Context, query ListQuery) (RecipePage, error) {
	if err := c.wait(ctx); err != nil {
		return RecipePage{}, err
	}
	size := query.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	page := query.Page
	if page <= 0 {
		page = 1
	}

	needle := strings.ToLower(strings.TrimSpace(query.Search))
	var matched []Recipe
	for _, r := range c.recipes {
		if needle == "" || r.matches(needle) {
			matched = append(matched, r)
		}
	}

	totalPages := (len(matched) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		return RecipePage{}, &StatusError{Path: "/api/recipes", Code: 404}
	}
	start := (page - 1) * size
	end := min(start+size, len(matched))
	return RecipePage{
		Items:      append([]Recipe(nil), matched[start:end]...),
		Page:       page,
		TotalPages: totalPages,
		Total:      len(matched),
	}, nil
}

// FavoritesCount counts recipes flagged as favorites.
func (c *Catalog) FavoritesCount(ctx context.Context) (int, error) {
	if err := c.wait(ctx); err != nil {
		return 0, err
	}
	n := 0
	for _, r := range c.recipes {
		if r.Favorite {
			n++
		}
	}
	return n, nil
}

// Session returns the demo user.
func (c *Catalog) Session(ctx context.Context) (Session, error) {
	if err := c.wait(ctx); err != nil {
		return Session{}, err
	}
	return c.session, nil
}

func (c *Catalog) wait(ctx context.Context) error {
	if c.Latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.Latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("catalog: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

func (r Recipe) matches(needle string) bool {
	if strings.Contains(strings.ToLower(r.Title), needle) ||
		strings.Contains(strings.ToLower(r.Category), needle) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), needle) {
			return true
		}
	}
	return false
}

// DemoRecipes returns the bundled recipe set.
func DemoRecipes() []Recipe {
	return []Recipe{
		{ID: "r1", Title: "Pizza Dough", Category: "Baking", Minutes: 90, Servings: 4, Favorite: true,
			Summary: "Chewy overnight dough for two round pizzas.", Ingredients: []string{"flour", "water", "yeast", "salt", "olive oil"}},
		{ID: "r2", Title: "Margherita Pizza", Category: "Mains", Minutes: 25, Servings: 2, Favorite: true,
			Summary: "Tomato, mozzarella and basil on a blistered crust.", Ingredients: []string{"pizza dough", "tomato", "mozzarella", "basil"}},
		{ID: "r3", Title: "Pizzoccheri", Category: "Pasta", Minutes: 45, Servings: 4,
			Summary: "Buckwheat pasta with cabbage, potato and fontina.", Ingredients: []string{"buckwheat flour", "cabbage", "potato", "fontina", "sage"}},
		{ID: "r4", Title: "Pistachio Cake", Category: "Baking", Minutes: 70, Servings: 8,
			Summary: "Moist loaf with ground pistachios and lemon.", Ingredients: []string{"pistachios", "flour", "sugar", "eggs", "lemon"}},
		{ID: "r5", Title: "Pico de Gallo", Category: "Sides", Minutes: 15, Servings: 4, Favorite: true,
			Summary: "Fresh tomato salsa with lime and cilantro.", Ingredients: []string{"tomato", "onion", "jalapeno", "lime", "cilantro"}},
		{ID: "r6", Title: "Pad Thai", Category: "Mains", Minutes: 30, Servings: 2,
			Summary: "Rice noodles, tamarind, peanuts and egg.", Ingredients: []string{"rice noodles", "tamarind", "fish sauce", "peanuts", "egg"}},
		{ID: "r7", Title: "Pancakes", Category: "Breakfast", Minutes: 20, Servings: 4,
			Summary: "Fluffy buttermilk pancakes.", Ingredients: []string{"flour", "buttermilk", "eggs", "butter", "sugar"}},
		{ID: "r8", Title: "Pesto Genovese", Category: "Sauces", Minutes: 10, Servings: 4,
			Summary: "Basil, pine nuts and parmesan pounded smooth.", Ingredients: []string{"basil", "pine nuts", "parmesan", "garlic", "olive oil"}},
		{ID: "r9", Title: "Shakshuka", Category: "Breakfast", Minutes: 35, Servings: 3,
			Summary: "Eggs poached in spiced tomato and pepper sauce.", Ingredients: []string{"eggs", "tomato", "red pepper", "cumin", "paprika"}},
		{ID: "r10", Title: "Chicken Tikka Masala", Category: "Mains", Minutes: 60, Servings: 4,
			Summary: "Charred chicken in a creamy tomato sauce.", Ingredients: []string{"chicken", "yogurt", "garam masala", "tomato", "cream"}},
		{ID: "r11", Title: "Miso Soup", Category: "Soups", Minutes: 15, Servings: 2,
			Summary: "Dashi, miso, tofu and wakame.", Ingredients: []string{"dashi", "miso", "tofu", "wakame", "scallion"}},
		{ID: "r12", Title: "Banana Bread", Category: "Baking", Minutes: 75, Servings: 8,
			Summary: "Brown-butter banana loaf.", Ingredients: []string{"bananas", "flour", "butter", "brown sugar", "eggs"}},
		{ID: "r13", Title: "Caesar Salad", Category: "Salads", Minutes: 20, Servings: 2,
			Summary: "Romaine, croutons and anchovy dressing.", Ingredients: []string{"romaine", "parmesan", "anchovy", "egg yolk", "bread"}},
		{ID: "r14", Title: "Ramen", Category: "Soups", Minutes: 120, Servings: 2,
			Summary: "Shoyu broth with chashu and soft egg.", Ingredients: []string{"noodles", "pork belly", "soy sauce", "eggs", "scallion"}},
		{ID: "r15", Title: "Tiramisu", Category: "Desserts", Minutes: 40, Servings: 6, Favorite: true,
			Summary: "Espresso-soaked ladyfingers with mascarpone.", Ingredients: []string{"ladyfingers", "espresso", "mascarpone", "eggs", "cocoa"}},
	}
}
