package function

// Escaping and translation functions behave sensibly before any mock is
// registered: value-returning ones hand back their first argument,
// echo-style ones print it.
var (
	passthruBuiltins = []string{
		"__", "_x", "_n",
		"esc_html", "esc_attr", "esc_url", "esc_url_raw", "esc_js", "esc_textarea",
		"esc_html__", "esc_attr__", "esc_html_x", "esc_attr_x",
	}
	echoBuiltins = []string{
		"_e", "_ex", "esc_html_e", "esc_attr_e",
	}
)

func init() {
	defineBuiltins()
}

func defineBuiltins() {
	for _, name := range passthruBuiltins {
		Define(name, Passthru)
	}
	for _, name := range echoBuiltins {
		Define(name, Echo)
	}
}
