package rdf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Layer is one selectable scaffolding feature set.
type Layer struct {
	Number      int
	Name        string
	Description string
}

// Layers enumerates the framework's feature sets in install order.
var Layers = []Layer{
	{1, "core-docs", "Core agent docs (docs/AGENTS.md, .repomap.yaml)"},
	{2, "ai-guidance", "AI protocols, checklists, and prompt seeds under docs/ai/"},
	{3, "folder-docs", "Documentation templates and .folder.md scaffolding"},
	{4, "repomap", "Generated REPOMAP.yaml source index"},
	{5, "decisions", "Architecture decision records under docs/architecture/"},
}

// AllLayers returns every layer number, ascending.
func AllLayers() []int {
	nums := make([]int, len(Layers))
	for i, l := range Layers {
		nums[i] = l.Number
	}
	return nums
}

// ParseLayers parses a comma-separated selection such as "1,3" into a
// sorted, deduplicated layer list. An empty selection means all layers.
func ParseLayers(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return AllLayers(), nil
	}

	seen := make(map[int]bool)
	var nums []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid layer %q: layers are numbers 1-%d", part, len(Layers))
		}
		if n < 1 || n > len(Layers) {
			return nil, fmt.Errorf("invalid layer %d: layers are numbers 1-%d", n, len(Layers))
		}
		if !seen[n] {
			seen[n] = true
			nums = append(nums, n)
		}
	}

	if len(nums) == 0 {
		return nil, fmt.Errorf("no layers selected")
	}
	sort.Ints(nums)
	return nums, nil
}

// layerByNumber returns the layer definition for n.
func layerByNumber(n int) (Layer, bool) {
	for _, l := range Layers {
		if l.Number == n {
			return l, true
		}
	}
	return Layer{}, false
}
