package extractors

import (
	"github.com/mygurukul/wisdom-core/internal/core/domain"
	"github.com/mygurukul/wisdom-core/internal/core/ports/driven"
)

// RegistryCleaner wires the pattern registry in as the line cleaner,
// falling back to generic marker stripping for documents the registry
// does not know. Without the fallback every line of an unregistered
// document would clean to "".
func RegistryCleaner(registry driven.PatternRegistry) CleanFunc {
	return func(line, documentName string) string {
		if _, err := registry.Abbreviation(documentName); err != nil {
			return GenericClean(line)
		}
		return registry.ExtractVerseText(line, documentName)
	}
}

// Build constructs one extractor per literary type over the default
// profiles, all sharing the given random source and cleaner.
func Build(random driven.RandomSource, clean CleanFunc) map[domain.TextType]driven.UnitExtractor {
	out := make(map[domain.TextType]driven.UnitExtractor)
	for textType, profile := range Defaults() {
		out[textType] = New(profile, random, clean)
	}
	return out
}
