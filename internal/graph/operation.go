// Package graph
package graph

import (
	"unicode"
)

type operationDefinition struct {
	kind string
	name string
}

// scanOperations 扫描文档顶层的操作定义, 跳过注释、字符串以及选择集
func scanOperations(document string) []operationDefinition {
	runes := []rune(document)
	var operations []operationDefinition
	var pending *operationDefinition
	depth := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '#':
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
		case r == '"':
			i = skipString(runes, i)
		case r == '{' || r == '(' || r == '[':
			if depth == 0 && r == '{' {
				if pending == nil {
					operations = append(operations, operationDefinition{kind: "query"})
				} else {
					if pending.kind != "fragment" {
						operations = append(operations, *pending)
					}
					pending = nil
				}
			}
			depth++
		case r == '}' || r == ')' || r == ']':
			if depth > 0 {
				depth--
			}
		case depth == 0 && isNameStart(r):
			start := i
			for i+1 < len(runes) && isNameContinue(runes[i+1]) {
				i++
			}
			word := string(runes[start : i+1])
			switch {
			case pending == nil && (word == "query" || word == "mutation" || word == "subscription" || word == "fragment"):
				pending = &operationDefinition{kind: word}
			case pending != nil && pending.name == "":
				pending.name = word
			}
		}
	}
	return operations
}

func skipString(runes []rune, i int) int {
	if i+2 < len(runes) && runes[i+1] == '"' && runes[i+2] == '"' {
		for j := i + 3; j+2 < len(runes); j++ {
			if runes[j] == '\\' {
				j++
				continue
			}
			if runes[j] == '"' && runes[j+1] == '"' && runes[j+2] == '"' {
				return j + 2
			}
		}
		return len(runes)
	}
	for j := i + 1; j < len(runes); j++ {
		switch runes[j] {
		case '\\':
			j++
		case '"', '\n':
			return j
		}
	}
	return len(runes)
}

func isNameStart(r rune) bool {
	return r == '_' || (r < unicode.MaxASCII && unicode.IsLetter(r))
}

func isNameContinue(r rune) bool {
	return isNameStart(r) || (r >= '0' && r <= '9')
}

func isMutation(document, operationName string) bool {
	operations := scanOperations(document)
	for _, op := range operations {
		if operationName == "" || op.name == operationName {
			return op.kind == "mutation"
		}
	}
	return false
}
