// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import "strings"

// DefaultTag is assigned when no keyword rule matches a paper.
const DefaultTag = "Machine Learning"

// maxTags caps the tag list per record.
const maxTags = 5

// maxImpactSuggestions caps the impact list per record.
const maxImpactSuggestions = 2

// categoryRule pairs a category label with the keywords that select it.
type categoryRule struct {
	category string
	keywords []string
}

// categoryRules is evaluated in order; the first rule with a matching
// keyword wins. The final fallback is Machine Learning.
var categoryRules = []categoryRule{
	{"Privacy & Security", []string{"privacy", "security", "federated", "differential privacy"}},
	{"Computer Vision", []string{"vision", "image", "video", "detection", "segmentation"}},
	{"Natural Language Processing", []string{"nlp", "language", "text", "translation", "chatbot"}},
	{"Robotics", []string{"robot", "autonomous", "navigation"}},
}

// InferCategory chooses a category label by keyword scan of title and
// abstract. Rule order is the priority order.
func InferCategory(title, abstract string) string {
	text := strings.ToLower(title + " " + abstract)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.category
			}
		}
	}
	return "Machine Learning"
}

// impactTable maps category labels to impact-suggestion strings.
var impactTable = map[string][]string{
	"Machine Learning": {
		"MLOps: Improved model training and deployment workflows",
		"Research: New benchmarks for model performance",
	},
	"Computer Vision": {
		"Robotics: Enhanced visual perception systems",
		"Healthcare: Improved medical image analysis",
	},
	"Natural Language Processing": {
		"Customer Service: Better chatbot interactions",
		"Content Creation: Enhanced text generation tools",
	},
	"Privacy & Security": {
		"Enterprise: Stronger data protection measures",
		"Compliance: Meeting regulatory requirements",
	},
}

// defaultImpact is used for categories without a table entry.
var defaultImpact = []string{
	"Industry: Practical applications in production systems",
	"Research: Foundation for future investigations",
}

// SuggestImpact returns up to two impact suggestions for a category.
func SuggestImpact(category string) []string {
	suggestions, ok := impactTable[category]
	if !ok {
		suggestions = defaultImpact
	}
	if len(suggestions) > maxImpactSuggestions {
		suggestions = suggestions[:maxImpactSuggestions]
	}
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}

// TagRule pairs a tag with the keywords that trigger it.
type TagRule struct {
	Tag      string   `yaml:"tag"`
	Keywords []string `yaml:"keywords"`
}

// defaultTagRules is scanned in order; matched tags are collected in rule
// order and capped at maxTags.
var defaultTagRules = []TagRule{
	{"LLM", []string{"large language model", "llm", "gpt", "bert", "transformer language"}},
	{"Computer Vision", []string{"computer vision", "image", "video", "visual", "detection", "segmentation"}},
	{"NLP", []string{"natural language", "nlp", "text processing", "language model"}},
	{"Deep Learning", []string{"deep learning", "neural network", "deep neural"}},
	{"Reinforcement Learning", []string{"reinforcement learning", "rl", "policy gradient", "q-learning"}},
	{"Federated Learning", []string{"federated learning", "federated"}},
	{"Privacy", []string{"privacy", "differential privacy", "secure"}},
	{"Security", []string{"security", "adversarial", "attack"}},
	{"Attention", []string{"attention mechanism", "self-attention", "attention"}},
	{"Transformer", []string{"transformer", "bert", "gpt"}},
	{"Efficiency", []string{"efficient", "optimization", "faster", "speedup"}},
	{"Edge Computing", []string{"edge", "mobile", "embedded"}},
	{"Real-Time", []string{"real-time", "realtime", "latency"}},
	{"Generative AI", []string{"generative", "generation", "gan", "diffusion"}},
	{"Robotics", []string{"robot", "autonomous", "navigation"}},
	{"Healthcare", []string{"medical", "healthcare", "diagnosis", "clinical"}},
	{"Multimodal", []string{"multimodal", "multi-modal", "vision-language"}},
}

// DefaultTagRules returns a copy of the built-in keyword table, in
// match-priority order.
func DefaultTagRules() []TagRule {
	out := make([]TagRule, len(defaultTagRules))
	copy(out, defaultTagRules)
	return out
}

// ExtractTags scans title and abstract against the built-in keyword table.
func ExtractTags(title, abstract string) []string {
	return ExtractTagsWith(defaultTagRules, title, abstract)
}

// ExtractTagsWith scans title and abstract against the given rules,
// collecting matching tags in rule order, capped at five, falling back
// to the single default tag when nothing matches.
func ExtractTagsWith(rules []TagRule, title, abstract string) []string {
	text := strings.ToLower(title + " " + abstract)

	var tags []string
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				tags = append(tags, rule.Tag)
				break
			}
		}
		if len(tags) == maxTags {
			break
		}
	}

	if len(tags) == 0 {
		return []string{DefaultTag}
	}
	return tags
}
