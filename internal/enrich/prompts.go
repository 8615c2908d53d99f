package enrich

import "fmt"

// The three prompt templates. The genre vocabulary is open: the examples
// steer the model but the response is never validated against them.

func genrePrompt(title string) string {
	return fmt.Sprintf(
		"What is the primary single-word genre for the video game '%s'? "+
			"Examples: Fighting, Shooter, RPG, Simulation, Strategy, Action, Adventure, Puzzle, Sports, Racing. "+
			"Respond with only the single-word genre.", title)
}

func descriptionPrompt(title string) string {
	return fmt.Sprintf(
		"Imagine you are writing the content for a 'description' field in a game database for '%s'. "+
			"Write only the text for that field, ensuring it's concise (strictly under 30 words) and starts directly with the description itself. "+
			"Do NOT use the game title in the description. Focus on the gameplay.", title)
}

func playerModePrompt(title string) string {
	return fmt.Sprintf(
		"Does the video game '%s' support single-player only, multiplayer only, or both? "+
			"Respond with *only one* of these exact words: 'Singleplayer', 'Multiplayer', or 'Both'.", title)
}
