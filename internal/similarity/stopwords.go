package similarity

// defaultStopwords is the fixed multilingual (English/French) stop-word set
// stripped before overlap computation.
var defaultStopwords = func() map[string]struct{} {
	words := []string{
		"the", "and", "for", "are", "but", "not", "you", "all", "can", "her",
		"was", "one", "our", "out", "day", "get", "has", "him", "his", "how",
		"its", "may", "new", "now", "old", "see", "two", "way", "who", "boy",
		"did", "she", "use", "many", "than", "them", "these",
		"les", "des", "une", "pour", "avec", "dans", "sur", "par", "est",
		"sont", "été", "être", "avoir", "fait", "faire", "cette", "comme",
		"plus", "tout", "tous", "toutes",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()
