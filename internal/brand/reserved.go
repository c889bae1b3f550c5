package brand

import (
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/tmtheme/internal/cssvars"
	"github.com/alexisbeaulieu97/tmtheme/internal/statematrix"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

// reservedNamespaces holds the leading segment of every variable the engine
// projects, plus the group and component names. A brand whose namespace
// starts with one of them could overwrite or remove engine variables.
var reservedNamespaces = sync.OnceValue(func() map[string]struct{} {
	reserved := make(map[string]struct{})
	add := func(name string) {
		head, _, _ := strings.Cut(strings.TrimPrefix(name, "--"), "-")
		if head != "" {
			reserved[head] = struct{}{}
		}
	}

	merged := tokens.GetMergedTokens(nil, tokens.Layers{})
	for _, mode := range tokens.Modes {
		for _, group := range cssvars.Groups() {
			add(group.Name)
			for name := range group.Build(mode, merged) {
				add(name)
			}
		}
		for _, contract := range statematrix.Contracts(mode, statematrix.SourceFor(mode, merged)) {
			add(contract.Component)
			for name := range statematrix.Flatten(contract.Matrix) {
				add(name)
			}
		}
	}
	return reserved
})

// ReservedNamespace reports whether namespace would collide with engine variables.
func ReservedNamespace(namespace string) bool {
	head, _, _ := strings.Cut(namespace, "-")
	_, ok := reservedNamespaces()[head]
	return ok
}
