package texttransform

import "fmt"

// taskPrompts maps each task to its instruction template. %s receives the
// source text.
var taskPrompts = map[TaskKind]string{
	TaskSimplify: `Please simplify this transcript for someone with cognitive disabilities:
- Break it into clear, simple sections
- Use simple language
- Highlight key points
- Add explanations for complex terms

Transcript:
%s`,

	TaskSummarize: `Please provide a clear and concise summary of the following content:

%s`,

	TaskSummarizeAndExplain: `Please provide both a summary and detailed explanation of the following text.
Format the response in two sections:

1. Summary (brief overview)
2. Detailed Explanation (break down complex concepts, use simple language)

Text to process:
%s`,

	TaskKeyPoints: `Please extract and explain the key points from this transcript:
- List the most important ideas
- Explain each point in simple terms
- Add real-world examples where helpful
- Organize points by topic

Transcript:
%s`,

	TaskFocusGuide: `Create a focus guide for this content:
- Identify main topics and subtopics
- Create study questions
- Suggest memory aids
- Add visual learning cues (describe them)

Content:
%s`,

	TaskSimplifyForHearing: `Please provide a clear and concise summary of the following content,
making it easily understandable for hearing impaired individuals:

%s`,

	TaskSimplifyAndSummarize: `Please simplify and summarize the following text for a visually impaired person.
Make it clear and concise while maintaining the key information:

%s`,
}

func promptFor(task TaskKind, text string) (string, bool) {
	template, ok := taskPrompts[task]
	if !ok {
		return "", false
	}
	return fmt.Sprintf(template, text), true
}
