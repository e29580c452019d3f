package token

// Keyword tags the reserved words recognised by the scanner.
type Keyword uint8

const (
	KeywordNone Keyword = iota
	Await
	Break
	Case
	Catch
	Class
	Const
	Continue
	Debugger
	Default
	Delete
	Do
	Else
	Export
	Extends
	Finally
	For
	Function
	If
	Import
	In
	Instanceof
	New
	Return
	Super
	Switch
	This
	Throw
	Try
	Typeof
	Var
	Void
	While
	With
	Yield
)

var keywords = map[string]Keyword{
	"await":      Await,
	"break":      Break,
	"case":       Case,
	"catch":      Catch,
	"class":      Class,
	"const":      Const,
	"continue":   Continue,
	"debugger":   Debugger,
	"default":    Default,
	"delete":     Delete,
	"do":         Do,
	"else":       Else,
	"export":     Export,
	"extends":    Extends,
	"finally":    Finally,
	"for":        For,
	"function":   Function,
	"if":         If,
	"import":     Import,
	"in":         In,
	"instanceof": Instanceof,
	"new":        New,
	"return":     Return,
	"super":      Super,
	"switch":     Switch,
	"this":       This,
	"throw":      Throw,
	"try":        Try,
	"typeof":     Typeof,
	"var":        Var,
	"void":       Void,
	"while":      While,
	"with":       With,
	"yield":      Yield,
}

// keywordText is the inverse of keywords, indexed by tag.
var keywordText = func() []string {
	out := make([]string, len(keywords)+1)
	for text, kw := range keywords {
		out[kw] = text
	}
	return out
}()

// LookupKeyword возвращает тег и true, если ident: ключевое слово.
// Сравнение регистрозависимое: "Var" остаётся идентификатором.
func LookupKeyword(ident string) (Keyword, bool) {
	kw, ok := keywords[ident]
	return kw, ok
}

// Keywords returns every reserved word, in tag order.
func Keywords() []string {
	return append([]string(nil), keywordText[1:]...)
}

// String returns the source spelling of the keyword.
func (k Keyword) String() string {
	if k > KeywordNone && int(k) < len(keywordText) {
		return keywordText[k]
	}
	return "none"
}
