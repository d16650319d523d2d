package analysis

// evaluationPrompt is the fixed instructional text sent with every analysis.
// It must not vary between calls: result comparability and testing depend on
// every document being judged against the same instructions.
const evaluationPrompt = `You are an expert resume reviewer and career coach.
Analyze the attached resume and evaluate it on the following criteria:

1. Content quality: clarity, relevance, and completeness of each section.
2. Achievement phrasing: use of strong action verbs and quantified impact.
3. Technical presentation: how skills, tools, and projects are described.
4. Formatting and ATS compatibility: structure, consistency, and whether an
   applicant tracking system can parse it reliably.
5. Overall competitiveness in the current job market.

Produce:
- "score": an overall score between 0 and 100.
- "improvements": specific, actionable suggestions, each with the resume area
  it applies to ("category") and the concrete change to make ("suggestion").
- "strengths": 3 to 5 things the resume already does well.

Respond with only the JSON object matching the required schema. Do not include
any explanation, markdown, or text before or after the JSON.`

// Compose returns the evaluation prompt. Deterministic: every call returns
// identical text.
func Compose() string {
	return evaluationPrompt
}
