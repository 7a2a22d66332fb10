package text

import "github.com/go-text/typesetting/language"

// resolveScripts returns the script of every character. Inherited
// characters (combining marks) take the script of the character before
// them; Common characters (spaces, punctuation, digits) take the script of
// their neighbours so that they shape together with the surrounding run.
func resolveScripts(text []rune) []language.Script {
	scripts := make([]language.Script, len(text))
	for i, r := range text {
		scripts[i] = language.LookupScript(r)
	}

	last := language.Common
	for i, s := range scripts {
		switch {
		case s == language.Inherited:
			scripts[i] = last
		case concreteScript(s):
			last = s
		}
	}

	last = language.Common
	for i, s := range scripts {
		if s != language.Common {
			if concreteScript(s) {
				last = s
			}
			continue
		}
		scripts[i] = resolveCommonScript(last, findNextConcreteScript(scripts, i+1))
	}
	return scripts
}

func concreteScript(s language.Script) bool {
	return s != language.Common && s != language.Inherited && s != language.Unknown
}

// findNextConcreteScript finds the next non-Common, non-Inherited script starting at index start.
func findNextConcreteScript(scripts []language.Script, start int) language.Script {
	for j := start; j < len(scripts); j++ {
		if concreteScript(scripts[j]) {
			return scripts[j]
		}
	}
	return language.Common
}

// resolveCommonScript determines what script a Common character should inherit.
func resolveCommonScript(prev, next language.Script) language.Script {
	switch {
	case prev != language.Common && prev == next:
		return prev
	case prev != language.Common && next == language.Common:
		return prev
	case prev == language.Common && next != language.Common:
		return next
	case prev != language.Common:
		return prev
	default:
		return language.Common
	}
}

// scriptRunLimit returns the end of the run of equal scripts starting at
// start.
func scriptRunLimit(scripts []language.Script, start int) int {
	i := start + 1
	for i < len(scripts) && scripts[i] == scripts[start] {
		i++
	}
	return i
}
