package scenario

// DefaultTitle is shown when a scenario has no title.
const DefaultTitle = "Untitled"

// DefaultLikelihood is assigned to layers that do not declare one.
const DefaultLikelihood = "Medium"

// Layer is one architectural layer inside a scenario, with defaults already applied.
type Layer struct {
	Name       string
	Likelihood string   // "Medium" when absent
	Signals    []string // never nil
	Checks     []string // never nil
}

// Scenario is a single pre-authored performance-issue context.
type Scenario struct {
	Key         string
	Title       string // raw title, "" when absent
	TitleSet    bool   // whether the document carried a title
	Description string
	Layers      []Layer // document order
}

// ResolvedTitle returns the title, or DefaultTitle when the document had none.
func (s Scenario) ResolvedTitle() string {
	if !s.TitleSet {
		return DefaultTitle
	}
	return s.Title
}

// Layer returns the named layer, if present.
func (s Scenario) Layer(name string) (Layer, bool) {
	for _, l := range s.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

// Catalog maps scenario keys to scenarios, preserving document order.
type Catalog struct {
	scenarios []Scenario
	index     map[string]int
}

// NewCatalog builds a catalog from scenarios in the given order.
// A repeated key keeps its first position and takes the later value.
func NewCatalog(scenarios ...Scenario) Catalog {
	c := Catalog{index: make(map[string]int, len(scenarios))}
	for _, s := range scenarios {
		c.put(s)
	}
	return c
}

func (c *Catalog) put(s Scenario) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[s.Key]; ok {
		c.scenarios[i] = s
		return
	}
	c.index[s.Key] = len(c.scenarios)
	c.scenarios = append(c.scenarios, s)
}

// Lookup returns the scenario stored under key.
func (c Catalog) Lookup(key string) (Scenario, bool) {
	i, ok := c.index[key]
	if !ok {
		return Scenario{}, false
	}
	return c.scenarios[i], true
}

// Scenarios returns all scenarios in document order.
func (c Catalog) Scenarios() []Scenario {
	out := make([]Scenario, len(c.scenarios))
	copy(out, c.scenarios)
	return out
}

// Keys returns scenario keys in document order.
func (c Catalog) Keys() []string {
	keys := make([]string, len(c.scenarios))
	for i, s := range c.scenarios {
		keys[i] = s.Key
	}
	return keys
}

// Len returns the number of scenarios.
func (c Catalog) Len() int {
	return len(c.scenarios)
}
