package exercises

import "fmt"

func audioExercisePrompt(topic, difficulty string) string {
	return fmt.Sprintf(`Create an audio-based exercise for visually impaired users about "%s".
Include:
1. A brief introduction to the topic
2. 5 fill-in-the-blank questions
3. 5 one-word answer questions
4. Clear audio cues for each section

Format the response as JSON with the following structure:
{
    "introduction": "text",
    "fillInBlanks": [
        { "question": "text", "answer": "text", "beforeBlank": "text", "afterBlank": "text" }
    ],
    "oneWordAnswers": [
        { "question": "text", "answer": "text", "hint": "text" }
    ]
}

Difficulty level: %s`, topic, difficulty)
}

func matchingCardsPrompt(topic, difficulty string) string {
	return fmt.Sprintf(`Create a dynamic card-based exercise about "%s" for users with cognitive disabilities.
Include:
1. Simple, clear instructions
2. 5 sets of matching cards
3. Visual descriptions for each card
4. Progressive difficulty levels
5. Memory aids and hints

Format as JSON with structure:
{
    "instructions": "text",
    "cardSets": [
        {
            "question": "text",
            "cards": [
                {
                    "text": "string",
                    "isCorrect": boolean,
                    "visualDescription": "string",
                    "hint": "string"
                }
            ],
            "difficulty": "string"
        }
    ],
    "progressiveHints": ["string"]
}

Difficulty level: %s`, topic, difficulty)
}

func dragDropPrompt(topic, difficulty string) string {
	return fmt.Sprintf(`Create a drag-and-drop exercise about "%s" for hearing impaired users.
Include:
1. A clear visual instruction set
2. 5 drag-drop pairs with descriptions
3. Visual feedback messages
4. Difficulty level: %s

Format as JSON with structure:
{
    "instructions": "text",
    "pairs": [
        {
            "draggable": { "text": "string", "description": "string" },
            "target": { "text": "string", "description": "string" }
        }
    ],
    "feedback": {
        "correct": "string",
        "incorrect": "string"
    }
}`, topic, difficulty)
}

func multipleChoicePrompt(topic, difficulty string) string {
	return fmt.Sprintf(`Create a visual multiple-choice exercise about "%s" for hearing impaired users.
Include:
1. Clear visual instructions
2. 5 questions with 4 options each
3. Visual explanations for each option
4. Difficulty level: %s

Format as JSON with structure:
{
    "instructions": "text",
    "questions": [
        {
            "question": "text",
            "options": [
                { "text": "string", "isCorrect": boolean, "explanation": "string" }
            ],
            "visualHint": "description for an image"
        }
    ]
}`, topic, difficulty)
}
