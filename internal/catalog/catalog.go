// Package catalog holds the built-in course catalog. The shipped catalog is
// empty; the sample set is kept for builds that enable it in settings.
package catalog

import "github.com/delvepad/ai-delvepad/internal/model"

// Platforms used by the sample catalog
const (
	PlatformUdemy   = "Udemy"
	PlatformYoutube = "Youtube"
	PlatformYouTube = "YouTube"
)

// BuiltIn returns the catalog loaded at startup. When samples is false the
// catalog is empty, which is the shipped configuration.
func BuiltIn(samples bool) []model.CatalogItem {
	if !samples {
		return []model.CatalogItem{}
	}
	return Samples()
}

// Samples returns a fresh copy of the sample catalog in display order
func Samples() []model.CatalogItem {
	items := make([]model.CatalogItem, 0, len(sampleRows))
	for _, row := range sampleRows {
		items = append(items, model.NewCatalogItem(row.title, model.SubjectAI, row.platform, row.mins, row.year, row.views, row.url))
	}
	return items
}

type sampleRow struct {
	title    string
	platform string
	mins     int
	year     int
	views    int
	url      string
}

var sampleRows = []sampleRow{
	{"ChatGPT and GenAI For Beginners", PlatformUdemy, 120, 2024, 1540, "https://www.udemy.com/course/generative-ai-course-master-chatgpt-genai-for-beginners/"},
	{"Practical Introduction to ChatGPT", PlatformUdemy, 40, 2024, 1250, "https://www.udemy.com/course/practical-introduction-to-chatgpt-ai-academy/"},
	{"AI for everything: Video Generation to Realistic Song", PlatformUdemy, 58, 2024, 875, "https://www.udemy.com/course/ai-for-everything-video-generation-to-realistic-song/"},
	{"Machine Learning Concepts Explained", PlatformYoutube, 22, 2025, 875, "https://www.youtube.com/watch?v=Fa_V9fP2tpU"},
	{"Mastering Generative AI for Developer Productivity", PlatformUdemy, 61, 2024, 980, "https://www.udemy.com/course/mastering-generative-ai-for-developer-productivity/"},
	{"Training Your Own AI Model Is Not As Hard As You Think", PlatformYoutube, 11, 2024, 875, "https://www.youtube.com/watch?v=fCUkvL0mbxI"},
	{"Generative A.I. & Prompt Engineering", PlatformUdemy, 117, 2024, 2100, "https://www.udemy.com/course/aim810-genai/"},
	{"Intro to Google AI Studio", PlatformYoutube, 26, 2025, 2100, "https://www.youtube.com/watch?v=13EPujO40iE"},
	{"Beginner Intro to A.I.", PlatformUdemy, 105, 2024, 760, "https://www.udemy.com/course/highschooler-intro-to-ai-course/"},
	// Leading space kept: the link is skipped when sharing favorites
	{"Introduction to RAG: Retrieval Augmented Generation", PlatformYoutube, 6, 2025, 760, " https://www.youtube.com/watch?v=tLGjvhLUqaY"},
	{"Learn LangChain: Build LLM Applications with LangChain", PlatformUdemy, 107, 2024, 1820, "https://www.udemy.com/course/learn-langchain-build-llm-applications-with-langchain/"},
	{"SLM's : What's a Small Language Model?", PlatformYoutube, 7, 2024, 760, "https://www.youtube.com/watch?v=ssVILYrZifQ"},
	{"Become an AI-Powered Engineer: ChatGPT, Github Copilot", PlatformUdemy, 120, 2024, 690, "https://www.udemy.com/course/become-an-ai-powered-engineer-chatgpt-github-copilot/"},
	{"Introduction to Generative AI", PlatformYoutube, 19, 2025, 690, "https://www.youtube.com/watch?v=-n3UAKECGAU"},
	{"AI For Teachers and Educators", PlatformUdemy, 60, 2024, 950, "https://www.udemy.com/course/ai-for-teachers-and-educators/"},
	{"Multiuser Python Jupyter Notebooks for Gen AI, ML & DS", PlatformUdemy, 60, 2024, 580, "https://www.udemy.com/course/multiuser-python-jupyter-notebooks-for-gen-ai-ml-ds/"},
	{"Large Language Models Explained", PlatformYouTube, 8, 2025, 15400, "https://www.youtube.com/watch?v=LPZh9BOjkQs&t=214s"},
	{"Beginner and Basics of AI", PlatformYouTube, 10, 2025, 9800, "https://www.youtube.com/watch?v=nVyD6THcvDQ"},
	{"Generative A.I. Overview", PlatformYouTube, 9, 2024, 12500, "https://www.youtube.com/watch?v=2p5OHDxR2l8"},
	{"Large Language Models - Everything You Need to Know", PlatformYouTube, 25, 2024, 18700, "https://www.youtube.com/watch?v=osKyvYJ3PRM"},
	{"Introduction to Large Language Models", PlatformYouTube, 15, 2024, 8100, "https://www.youtube.com/watch?v=zizonToFXDs"},
	{"Introduction to Generative A.I. - Course Intro", PlatformYouTube, 20, 2025, 10600, "https://www.youtube.com/watch?v=Xz9asEJ4CB4"},
	{"Model Context Protocol", PlatformYouTube, 12, 2025, 7500, "https://www.youtube.com/watch?v=xyVTbv209a4"},
	{"Machine Learning Algorithms Explained", PlatformYouTube, 17, 2024, 21000, "https://www.youtube.com/watch?v=E0Hmnixke2g"},
	{"Introduction to Generative A.I.", PlatformYouTube, 18, 2024, 11200, "https://www.youtube.com/watch?v=cZaNf2rA30k"},
}
