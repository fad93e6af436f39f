package scenario

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is returned when the catalog is not valid YAML.
var ErrInvalidDocument = goerr.New("invalid scenarios document")

// Keys of the catalog document.
const (
	keyScenarios   = "scenarios"
	keyTitle       = "title"
	keyDescription = "description"
	keyLayers      = "layers"
	keyLikelihood  = "likelihood"
	keySignals     = "signals"
	keyChecks      = "checks"
)

// ParseCatalog parses YAML content into a Catalog.
// Missing or malformed sections are tolerated and resolved to defaults;
// only a syntax error is reported.
func ParseCatalog(content []byte) (Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return Catalog{}, goerr.Wrap(ErrInvalidDocument, "failed to parse YAML", goerr.V("cause", err.Error()))
	}

	catalog := NewCatalog()

	root := documentRoot(&doc)
	if root == nil || root.Kind != yaml.MappingNode {
		return catalog, nil
	}

	scenarios := lookup(root, keyScenarios)
	if scenarios == nil || scenarios.Kind != yaml.MappingNode {
		return catalog, nil
	}

	eachPair(scenarios, func(key string, value *yaml.Node) {
		catalog.put(parseScenario(key, value))
	})

	return catalog, nil
}

// LoadCatalogFromPath reads and parses a catalog from the given file path.
func LoadCatalogFromPath(path string) (Catalog, error) {
	// #nosec G304 - path is provided by CLI argument
	content, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, goerr.Wrap(err, "failed to read scenarios file", goerr.V("path", path))
	}

	catalog, err := ParseCatalog(content)
	if err != nil {
		return Catalog{}, goerr.Wrap(err, "failed to load scenarios file", goerr.V("path", path))
	}
	return catalog, nil
}

func parseScenario(key string, node *yaml.Node) Scenario {
	s := Scenario{Key: key, Layers: []Layer{}}
	if node == nil || node.Kind != yaml.MappingNode {
		return s
	}

	if title, ok := scalar(lookup(node, keyTitle)); ok {
		s.Title = title
		s.TitleSet = true
	}
	if desc, ok := scalar(lookup(node, keyDescription)); ok {
		s.Description = desc
	}

	layers := lookup(node, keyLayers)
	if layers == nil || layers.Kind != yaml.MappingNode {
		return s
	}

	seen := make(map[string]int)
	eachPair(layers, func(name string, value *yaml.Node) {
		layer := parseLayer(name, value)
		if i, ok := seen[name]; ok {
			s.Layers[i] = layer
			return
		}
		seen[name] = len(s.Layers)
		s.Layers = append(s.Layers, layer)
	})

	return s
}

func parseLayer(name string, node *yaml.Node) Layer {
	l := Layer{
		Name:       name,
		Likelihood: DefaultLikelihood,
		Signals:    []string{},
		Checks:     []string{},
	}
	if node == nil || node.Kind != yaml.MappingNode {
		return l
	}

	if likelihood, ok := scalar(lookup(node, keyLikelihood)); ok {
		l.Likelihood = likelihood
	}
	l.Signals = stringItems(lookup(node, keySignals))
	l.Checks = stringItems(lookup(node, keyChecks))
	return l
}

// documentRoot unwraps the document node produced by yaml.Unmarshal.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil
		}
		return resolve(doc.Content[0])
	}
	if doc.Kind == 0 {
		return nil
	}
	return resolve(doc)
}

func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

// lookup returns the value of the last occurrence of key in a mapping node.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	var found *yaml.Node
	eachPair(mapping, func(k string, v *yaml.Node) {
		if k == key {
			found = v
		}
	})
	return found
}

// eachPair visits key/value pairs of a mapping node in document order.
// Pairs pulled in by merge keys ("<<") come before the explicit pairs, so
// explicit keys override merged ones. Non-scalar keys are skipped.
func eachPair(mapping *yaml.Node, fn func(key string, value *yaml.Node)) {
	visitPairs(mapping, fn, map[*yaml.Node]bool{})
}

// visitPairs walks mapping; active holds the mappings being expanded so a
// self-referencing merge stops instead of recursing forever.
func visitPairs(mapping *yaml.Node, fn func(key string, value *yaml.Node), active map[*yaml.Node]bool) {
	if mapping == nil || mapping.Kind != yaml.MappingNode || active[mapping] {
		return
	}
	active[mapping] = true
	defer delete(active, mapping)

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		k := resolve(mapping.Content[i])
		if k != nil && isMergeKey(k) {
			visitMerged(resolve(mapping.Content[i+1]), fn, active)
		}
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		k := resolve(mapping.Content[i])
		if k == nil || k.Kind != yaml.ScalarNode || isMergeKey(k) {
			continue
		}
		fn(k.Value, resolve(mapping.Content[i+1]))
	}
}

// visitMerged expands the value of a merge key: a mapping, or a sequence of
// mappings where earlier entries win over later ones.
func visitMerged(value *yaml.Node, fn func(key string, value *yaml.Node), active map[*yaml.Node]bool) {
	if value == nil {
		return
	}
	switch value.Kind {
	case yaml.MappingNode:
		visitPairs(value, fn, active)
	case yaml.SequenceNode:
		for i := len(value.Content) - 1; i >= 0; i-- {
			visitPairs(resolve(value.Content[i]), fn, active)
		}
	}
}

func isMergeKey(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!merge"
}

// scalar returns the value of a non-null scalar node.
func scalar(node *yaml.Node) (string, bool) {
	if node == nil || node.Kind != yaml.ScalarNode || node.ShortTag() == "!!null" {
		return "", false
	}
	return node.Value, true
}

// stringItems collects the scalar items of a sequence node. Anything else yields an empty slice.
func stringItems(node *yaml.Node) []string {
	out := []string{}
	if node == nil || node.Kind != yaml.SequenceNode {
		return out
	}
	for _, item := range node.Content {
		if v, ok := scalar(resolve(item)); ok {
			out = append(out, v)
		}
	}
	return out
}
