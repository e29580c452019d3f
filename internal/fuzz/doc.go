// Package fuzztests houses Go fuzz harnesses for the tokenizer
// (source -> lexer). They smoke test robustness on arbitrary bytes and check
// that every stream the lexer accepts keeps its structural invariants.
//
// Назначение: загрузить байты в FileSet, прогнать лексер до конца или до
// первой ошибки, проверить поток через testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/diag, internal/testkit.

package fuzztests
