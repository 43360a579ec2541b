package parsing

import (
	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/skills"
)

func testDictionary() *skills.Dictionary {
	return skills.NewDictionary([]skills.Row{
		{Skill: "Python", Aliases: "py,python3", Type: "hard"},
		{Skill: "Java", Type: "hard"},
		{Skill: "Kotlin", Type: "hard"},
		{Skill: "JavaScript", Aliases: "js", Type: "hard"},
		{Skill: "Docker", Type: "hard"},
		{Skill: "Kubernetes", Aliases: "k8s", Type: "hard"},
		{Skill: "GraphQL", Type: "hard"},
		{Skill: "C++", Aliases: "cpp", Type: "hard"},
		{Skill: "C#", Aliases: "csharp", Type: "hard"},
		{Skill: ".NET", Aliases: "dotnet", Type: "hard"},
		{Skill: "Communication", Aliases: "communication skills", Type: "soft"},
	})
}

func testParser() *JobParser {
	dict := testDictionary()
	return NewJobParser(dict, nlp.NewLexicon(dict))
}
