package linux

import "strings"

func forEachToken(text, split string, call func(string)) {
	for len(text) != 0 {
		var line string

		if i := strings.Index(text, split); i >= 0 {
			line, text = text[:i], text[i+len(split):]
		} else {
			line, text = text, ""
		}

		call(line)
	}
}

func forEachLine(text string, call func(string)) {
	forEachToken(text, "\n", func(line string) {
		if line = strings.TrimSpace(line); line != "" {
			call(line)
		}
	})
}

func forEachProperty(text string, call func(string, string)) {
	forEachLine(text, func(line string) { call(splitProperty(line)) })
}

func splitProperty(text string) (key string, val string) {
	return split(text, ':')
}

func split(text string, sep byte) (head string, tail string) {
	if i := strings.IndexByte(text, sep); i >= 0 {
		head, tail = text[:i], text[i+1:]
	} else {
		head = text
	}
	head = strings.TrimSpace(head)
	tail = strings.TrimSpace(tail)
	return
}
