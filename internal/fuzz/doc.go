// Package fuzztests houses Go fuzz harnesses for the front-end stages
// (tokenizer -> parser -> tree builder -> semantic analyzer). Every stage must
// terminate on arbitrary bytes, whatever the language profile.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
