package web

// SitePage describes one navigable page. The list feeds the site
// navigation on the welcome page.
type SitePage struct {
	Name        string
	Link        string
	Description string
}

var sitePages = []SitePage{
	{"Lesson", "/lesson", "Displays all Brahmi characters with their Devanagari counterparts and pronunciations to learn the script basics."},
	{"Quiz 1", "/quiz/1", "Quiz converting displayed Brahmi characters to their correct Devanagari forms with multiple-choice options."},
	{"Quiz 2", "/quiz/2", "Quiz converting phonetic sounds to Brahmi characters with multiple-choice options."},
	{"Quiz 3", "/quiz/3", "Quiz matching Devanagari vocabulary words from categories like fruits, vegetables, and cities to their Brahmi script forms."},
	{"Progress", "/progress", "Dashboard displaying the user's latest quiz scores and progress over time."},
	{"LLM Helper", "/llm_helper", "Interactive AI assistant which provides guided help, Brahmi history, and detailed script information."},
	{"Converter", "/brahmi_converter", "Utility page converting Devanagari text to Brahmi script in the browser."},
}
