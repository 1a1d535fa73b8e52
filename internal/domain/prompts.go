package domain

import "fmt"

const analysisWithQuestionTemplate = `I have a dataset with the following characteristics:
%s

Question: %s

Please provide specific recommendations for data analysis, including:
1. Relevant statistical tests
2. Visualization suggestions
3. Potential insights to look for
4. Code examples if applicable

Keep the response focused and practical.`

const analysisTemplate = `I have a dataset with the following characteristics:
%s

Please suggest:
1. Appropriate exploratory data analysis steps
2. Statistical tests to consider
3. Visualization techniques
4. Potential research questions
5. Next steps for analysis

Provide practical, actionable advice.`

const codeReviewTemplate = "Please review this data science code:\n\n" +
	"Context: %s\n\n" +
	"Code:\n```\n%s\n```\n\n" +
	`Please provide:
1. Code quality feedback
2. Performance suggestions
3. Best practices recommendations
4. Potential bugs or issues
5. Alternative approaches

Focus on practical improvements.`

const firstStepsTemplate = "Based on this dataset summary, what analysis should I start with? %s"

// AnalysisPrompt renders the data analysis prompt. An empty question asks for
// a general exploration plan.
func AnalysisPrompt(summary, question string) string {
	if question == "" {
		return fmt.Sprintf(analysisTemplate, summary)
	}
	return fmt.Sprintf(analysisWithQuestionTemplate, summary, question)
}

// CodeReviewPrompt renders the code review prompt.
func CodeReviewPrompt(code, context string) string {
	return fmt.Sprintf(codeReviewTemplate, context, code)
}

// FirstStepsPrompt renders the prompt asking where to start with a dataset.
func FirstStepsPrompt(summary string) string {
	return fmt.Sprintf(firstStepsTemplate, summary)
}
