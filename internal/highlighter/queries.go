// internal/highlighter/queries.go
package highlighter

// Highlight queries per grammar. Kept deliberately small: comments,
// strings and keywords are enough for code inside a markdown document.

const goQuery = `
(comment) @comment
(interpreted_string_literal) @string
(raw_string_literal) @string
[
  "func" "return" "if" "else" "for" "range"
  "package" "import" "type" "struct" "interface"
  "var" "const" "go" "defer" "switch" "case"
] @keyword
`

const jsQuery = `
(comment) @comment
(string) @string
(template_string) @string
[
  "function" "return" "if" "else" "for" "while"
  "const" "let" "var" "class" "new" "import" "export"
] @keyword
`

const pythonQuery = `
(comment) @comment
(string) @string
[
  "def" "return" "if" "else" "elif" "for" "while"
  "import" "from" "class" "with" "try" "except" "lambda"
] @keyword
`

const rustQuery = `
(line_comment) @comment
(block_comment) @comment
(string_literal) @string
[
  "fn" "return" "if" "else" "for" "while" "loop"
  "let" "match" "impl" "struct" "enum" "use" "pub" "mod"
] @keyword
`
