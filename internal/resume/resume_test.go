package resume

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/skills"
)

func testDictionary() *skills.Dictionary {
	return skills.NewDictionary([]skills.Row{
		{Skill: "Python", Aliases: "py"},
		{Skill: "Go", Aliases: "golang"},
		{Skill: "JavaScript", Aliases: "js"},
		{Skill: "TypeScript", Aliases: "ts"},
		{Skill: "React", Aliases: "react.js,reactjs"},
		{Skill: "Node.js", Aliases: "node,nodejs"},
		{Skill: "Docker"},
		{Skill: "AWS", Aliases: "amazon web services"},
		{Skill: "PostgreSQL", Aliases: "postgres"},
		{Skill: "Communication", Type: "soft"},
	})
}

// sequentialIDs returns an IDFunc producing b_0001, b_0002, ...
func sequentialIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("b_%04d", n)
	}
}

func testWalker() *Walker {
	dict := testDictionary()
	return NewWalker(dict, nlp.NewLexicon(dict), sequentialIDs())
}

func testParser() *Parser {
	dict := testDictionary()
	return NewParser(dict, nlp.NewLexicon(dict), &Options{IDFunc: sequentialIDs()})
}
