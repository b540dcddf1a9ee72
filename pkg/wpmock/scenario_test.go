package wpmock_test

import (
	"testing"

	"github.com/flemzord/wpmock/pkg/function"
	"github.com/flemzord/wpmock/pkg/wp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioFilterReply(t *testing.T) {
	s, rec := open(t)
	s.OnFilter("title").With("x").Reply("Y")

	assert.Equal(t, "Y", wp.ApplyFilters("title", "x"))
	assert.Equal(t, "z", wp.ApplyFilters("title", "z"))
	assert.False(t, rec.Failed())
}

func TestScenarioUserFunction(t *testing.T) {
	s, rec := open(t)
	s.UserFunction("get_option", function.Options{Args: []any{"my_key"}, Return: "my_value"})

	assert.Equal(t, "my_value", wp.GetOption("my_key"))

	assert.True(t, rec.Capture(func() { wp.GetOption("other_key") }))
	require.NotEmpty(t, rec.Errors())
	assert.Contains(t, rec.Errors()[0], "mock: Unexpected Method Call")
}

// greeting is production-style code written against the facade.
func greeting() string {
	name, _ := wp.GetOption("blogname").(string)
	wp.DoAction("before_greeting", name)
	out, _ := wp.ApplyFilters("greeting", "Hello "+name).(string)
	return wp.EscHtml(out).(string)
}

func TestScenarioPluginCode(t *testing.T) {
	s, rec := open(t)
	s.UserFunction("get_option", function.Options{Args: []any{"blogname"}, Return: "Blog", Times: 1})
	s.ExpectAction("before_greeting", "Blog")
	s.OnFilter("greeting").With("Hello Blog").Reply("Hi Blog")

	assert.Equal(t, "Hi Blog", greeting())
	assert.True(t, s.AssertActionsCalled())

	rec.RunCleanups()
	assert.False(t, rec.Failed(), rec.Errors())
}
