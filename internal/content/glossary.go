// Package content holds the static reading material shown by the app: the
// AI glossary and the "LLM Process" article.
package content

// DefaultTerm is the glossary term selected when the tab first opens
const DefaultTerm = "LLM"

// Term is a glossary entry
type Term struct {
	Name       string
	Definition string
}

var glossary = []Term{
	{"Machine Learning", "A subset of artificial intelligence that enables systems to learn and improve from experience without being explicitly programmed."},
	{"Deep Learning", "A type of machine learning based on artificial neural networks that can learn representations of data with multiple levels of abstraction."},
	{"LLM", "Large Language Models are advanced AI models trained on vast amounts of text data to understand and generate human-like text."},
	{"LLM Training", "The process of teaching language models using large datasets to understand and generate human-like text."},
	{"Fine-tuning", "The process of further training a pre-trained model on a specific dataset to adapt it for a particular task."},
	{"Parameter", "Variables in a machine learning model that are learned during training."},
	{"Vector", "A mathematical representation of data in multiple dimensions."},
	{"Embeddings", "Dense vector representations of discrete variables, capturing semantic meanings."},
	{"Tokenization", "The process of converting text into smaller units (tokens) for processing."},
	{"Transformers", "Neural network architecture that uses self-attention mechanisms for processing sequential data."},
	{"Attention Mechanisms", "Components that allow models to focus on different parts of the input when producing output."},
	{"Inference", "The process of using a trained model to make predictions on new data."},
	{"LLM Temperature", "A parameter controlling the randomness of model outputs."},
	{"Frequency Parameter", "Controls how likely the model is to repeat common patterns in its output."},
	{"Sampling", "The process of generating text by selecting tokens based on their predicted probabilities."},
	{"Top-k Sampling", "A text generation method that considers only the k most likely next tokens."},
	{"RLHF", "Reinforcement Learning from Human Feedback - A method to align AI models with human preferences."},
	{"Decoding Strategies", "Methods used to generate text from language models."},
	{"Language Model Prompting", "Techniques for effectively instructing language models to perform specific tasks."},
	{"Autoregressive Models", "Models that generate output sequences one element at a time."},
}

// Glossary returns the glossary terms in display order
func Glossary() []Term {
	terms := make([]Term, len(glossary))
	copy(terms, glossary)
	return terms
}

// Lookup finds a term by name
func Lookup(name string) (Term, bool) {
	for _, term := range glossary {
		if term.Name == name {
			return term, true
		}
	}
	return Term{}, false
}
