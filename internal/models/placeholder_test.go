package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPlaceholders(t *testing.T) {
	names := ExtractPlaceholders("Summarize {{topic}} in {{length}} words", "{{%s}}")
	assert.Equal(t, []string{"topic", "length"}, names)
}

func TestExtractPlaceholdersDefaultFormat(t *testing.T) {
	names := ExtractPlaceholders("Compare {{a}} with {{b}}", "")
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestExtractPlaceholdersCustomFormat(t *testing.T) {
	names := ExtractPlaceholders("List <country> exports since <year>", "<%s>")
	assert.Equal(t, []string{"country", "year"}, names)
}

func TestExtractPlaceholdersDuplicatesPreserved(t *testing.T) {
	names := ExtractPlaceholders("{{x}} and {{x}} again", "{{%s}}")
	assert.Equal(t, []string{"x", "x"}, names)
}

func TestExtractPlaceholdersDegenerateFormat(t *testing.T) {
	// No suffix to delimit on: nothing can be extracted
	assert.Empty(t, ExtractPlaceholders("whatever {{x}}", "%s"))
	assert.Empty(t, ExtractPlaceholders("whatever {{x}}", "{{%s"))
	// Two markers is just as invalid
	assert.Empty(t, ExtractPlaceholders("whatever", "{%s}%s"))
}

func TestExtractPlaceholdersMultibyteFormat(t *testing.T) {
	names := ExtractPlaceholders("研究【主题】的历史", "【%s】")
	assert.Equal(t, []string{"主题"}, names)
}

func TestExtractPlaceholdersEmptyPrefix(t *testing.T) {
	names := ExtractPlaceholders("topic} and {other}", "%s}")
	assert.Equal(t, []string{"topic", " and {other"}, names)
}

func TestApplyTemplate(t *testing.T) {
	result := ApplyTemplate("Summarize {{topic}} in {{length}} words", "{{%s}}",
		map[string]string{"topic": "AI", "length": "100"})
	assert.Equal(t, "Summarize AI in 100 words", result)
}

func TestApplyTemplateUnboundLeftAlone(t *testing.T) {
	result := ApplyTemplate("Summarize {{topic}} in {{length}} words", "{{%s}}",
		map[string]string{"topic": "AI"})
	assert.Equal(t, "Summarize AI in {{length}} words", result)
}

func TestApplyTemplateGlobalReplace(t *testing.T) {
	result := ApplyTemplate("{{x}} plus {{x}}", "{{%s}}", map[string]string{"x": "1"})
	assert.Equal(t, "1 plus 1", result)
}

func TestApplyTemplateNoEscaping(t *testing.T) {
	// Values are substituted literally, delimiters in values included
	result := ApplyTemplate("say {{v}}", "{{%s}}", map[string]string{"v": "{{w}}"})
	assert.Equal(t, "say {{w}}", result)
}

func TestApplyTemplateMultibyteFormat(t *testing.T) {
	result := ApplyTemplate("研究【主题】的历史", "【%s】", map[string]string{"主题": "唐朝"})
	assert.Equal(t, "研究唐朝的历史", result)
}

func TestApplyTemplateDegenerateFormat(t *testing.T) {
	// The formats ExtractPlaceholders rejects substitute nothing
	assert.Equal(t, "keep {x} as-is", ApplyTemplate("keep {x} as-is", "%s", map[string]string{"x": "v"}))
	assert.Equal(t, "keep {x}v as-is", ApplyTemplate("keep {x}v as-is", "{%s}%s", map[string]string{"x": "v"}))
	assert.Equal(t, "keep {{x as-is", ApplyTemplate("keep {{x as-is", "{{%s", map[string]string{"x": "v"}))
}

func TestTemplateRoundTrip(t *testing.T) {
	tpl := &PromptTemplate{
		TemplateContent: "Summarize {{topic}} in {{length}} words",
	}

	vars := map[string]string{}
	for _, name := range tpl.ExtractPlaceholders() {
		vars[name] = "v-" + name
	}

	assert.Equal(t, "Summarize v-topic in v-length words", tpl.Apply(vars))
}
