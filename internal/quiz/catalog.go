package quiz

import "vocab-service/internal/models"

// Catalog is the fixed question set, loaded once at process start and never
// mutated. Selections operate on copies.
var Catalog = []models.Question{
	{Question: `What is the synonym of "happy"?`, Options: []string{"Sad", "Elated", "Angry", "Confused"}, Answer: "Elated"},
	{Question: `What is the antonym of "fast"?`, Options: []string{"Quick", "Slow", "Rapid", "Swift"}, Answer: "Slow"},
	{Question: `What is the synonym of "big"?`, Options: []string{"Tiny", "Large", "Small", "Little"}, Answer: "Large"},
	{Question: `What is the antonym of "bright"?`, Options: []string{"Dull", "Shiny", "Clear", "Radiant"}, Answer: "Dull"},
	{Question: `What is the synonym of "smart"?`, Options: []string{"Dumb", "Intelligent", "Ignorant", "Stupid"}, Answer: "Intelligent"},
	{Question: `What is the antonym of "hard"?`, Options: []string{"Soft", "Rough", "Tough", "Firm"}, Answer: "Soft"},
	{Question: `What is the synonym of "strong"?`, Options: []string{"Weak", "Feeble", "Powerful", "Fragile"}, Answer: "Powerful"},
	{Question: `What is the antonym of "hot"?`, Options: []string{"Warm", "Cold", "Lukewarm", "Boiling"}, Answer: "Cold"},
	{Question: `What is the synonym of "quick"?`, Options: []string{"Slow", "Rapid", "Sluggish", "Idle"}, Answer: "Rapid"},
	{Question: `What is the antonym of "light"?`, Options: []string{"Heavy", "Bright", "Luminous", "Radiant"}, Answer: "Heavy"},
	{Question: `What is the synonym of "fear"?`, Options: []string{"Bravery", "Courage", "Terror", "Peace"}, Answer: "Terror"},
	{Question: `What is the antonym of "love"?`, Options: []string{"Hate", "Affection", "Fondness", "Adoration"}, Answer: "Hate"},
	{Question: `What is the synonym of "joy"?`, Options: []string{"Misery", "Sorrow", "Happiness", "Grief"}, Answer: "Happiness"},
	{Question: `What is the antonym of "strong"?`, Options: []string{"Weak", "Powerful", "Resilient", "Hard"}, Answer: "Weak"},
	{Question: `What is the synonym of "brave"?`, Options: []string{"Cowardly", "Fearless", "Timid", "Afraid"}, Answer: "Fearless"},
}
