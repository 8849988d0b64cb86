// internal/highlighter/languages.go
package highlighter

import (
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	gosrc "github.com/smacker/go-tree-sitter/golang"
	jssrc "github.com/smacker/go-tree-sitter/javascript"
	pythonsrc "github.com/smacker/go-tree-sitter/python"
	rustsrc "github.com/smacker/go-tree-sitter/rust"
)

// language bundles a grammar with its highlight query.
type language struct {
	name  string
	lang  *sitter.Language
	query string

	once       sync.Once
	compiled   *sitter.Query
	compileErr error
}

// languages maps fence info strings to grammars. The JavaScript parser
// also covers JSON, as the grammar is a superset.
var languages = map[string]*language{}

func registerLanguage(l *language, aliases ...string) {
	for _, alias := range aliases {
		languages[alias] = l
	}
}

func init() {
	registerLanguage(&language{name: "Go", lang: gosrc.GetLanguage(), query: goQuery}, "go", "golang")
	registerLanguage(&language{name: "JavaScript", lang: jssrc.GetLanguage(), query: jsQuery}, "javascript", "js", "json")
	registerLanguage(&language{name: "Python", lang: pythonsrc.GetLanguage(), query: pythonQuery}, "python", "py")
	registerLanguage(&language{name: "Rust", lang: rustsrc.GetLanguage(), query: rustQuery}, "rust", "rs")
}

// LanguageFor resolves a fence info string to a registered language.
func LanguageFor(info string) (name string, ok bool) {
	l, ok := languages[info]
	if !ok {
		return "", false
	}
	return l.name, true
}
