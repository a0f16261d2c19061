package content

import "strings"

// Section is one titled part of an article
type Section struct {
	Heading string
	Body    string
}

// Article is a short piece of static reading
type Article struct {
	Title    string
	Intro    string
	Stages   []string
	Summary  string
	Sections []Section
}

// LLMProcess returns the article describing how a large language model is built
func LLMProcess() Article {
	return Article{
		Title:  "LLM Process",
		Intro:  "In the process of creating an LLM, there are 3 parts of the process:",
		Stages: []string{"Pre-training", "Fine-tuning", "Reinforcement Learning"},
		Summary: "During Pre-training, large amounts of data are processed by the A.I. model to create its language base. " +
			"Then in Fine-tuning, it's trained to give more goal-driven outputs from user input. " +
			"Then Reinforcement Learning is applied, where its responses are given a series of rankings in order to have the LLM give more appropriate output and answers. " +
			"The process is further described below:",
		Sections: []Section{
			{
				Heading: "1. Pre-training",
				Body: "In the pre-training phase, Large Language Models (LLMs) are trained as next-word predictors using vast, unstructured text data sourced from the internet. " +
					"This includes books, websites, articles, forums, and code repositories to ensure language diversity. " +
					"The text is cleaned, then tokenized into smaller units like subwords using methods like Byte-Pair Encoding (BPE) or WordPiece. " +
					"These token sequences are fed into transformer-based architectures, which handle long-range dependencies in language well.\n\n" +
					"This unsupervised task teaches the LLM general language understanding: grammar, semantics, and factual associations, without explicit labeling. " +
					"At this stage the model does not yet follow instructions; it mimics patterns from its training data. " +
					"Pre-training creates a powerful language base, but more steps are needed to guide it toward useful, goal-oriented behavior.",
			},
			{
				Heading: "2. Fine-tuning",
				Body: "Fine-tuning, or Supervised Fine-Tuning (SFT), builds on the pre-trained model by teaching instruction-following behavior. " +
					"A curated dataset of user instructions paired with ideal responses, often written by AI trainers, is used, and the model is trained to minimize the error between its output and those responses.\n\n" +
					"The model learns the structure of instruction-response conversations and answers prompts instead of continuing random sentences. " +
					"It may still produce incorrect or biased output, which is where reinforcement learning comes in.",
			},
			{
				Heading: "3. Reinforcement Learning",
				Body: "Reinforcement Learning from Human Feedback (RLHF) aligns the model with human values and expectations. " +
					"The model generates several outputs for the same prompt and human labelers rank them. " +
					"Those rankings train a separate reward model that predicts how humans would rate new responses.\n\n" +
					"The reward model then drives a reinforcement learning loop, using algorithms like Proximal Policy Optimization (PPO), that further tunes the LLM. " +
					"This helps the assistant stay on-topic, refuse unsafe requests, and avoid hallucinating false information.",
			},
		},
	}
}

// Markdown renders the article for a rich text widget
func (a Article) Markdown() string {
	var b strings.Builder
	b.WriteString("# " + a.Title + "\n\n")
	b.WriteString(a.Intro + "\n\n")
	for _, stage := range a.Stages {
		b.WriteString("- " + stage + "\n")
	}
	b.WriteString("\n" + a.Summary + "\n\n")
	for _, section := range a.Sections {
		b.WriteString("## " + section.Heading + "\n\n")
		b.WriteString(section.Body + "\n\n")
	}
	return b.String()
}
