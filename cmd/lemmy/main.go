// Command lemmy lemmatizes tagged word forms from the command line and
// inspects the bundled language resources.
package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lemmy-nlp/lemmy"
)

// CLI defines the command-line interface.
var CLI struct {
	Data string `name:"data" short:"d" help:"Directory of trained bundles (default: embedded)" type:"path"`

	Lemmatize LemmatizeCmd `cmd:"" help:"Lemmatize tagged word forms"`
	Languages LanguagesCmd `cmd:"" help:"List bundled languages"`
	Inspect   InspectCmd   `cmd:"" help:"Show bundle statistics"`
}

func loadBundle(lang string) (*lemmy.Bundle, error) {
	if CLI.Data != "" {
		return lemmy.LoadFrom(CLI.Data, lang)
	}
	return lemmy.Load(lang)
}

// LemmatizeCmd resolves each word to its lemma and prints one line per word.
type LemmatizeCmd struct {
	Lang  string   `help:"Language code" short:"l" default:"da"`
	POS   string   `help:"Part-of-speech tag" short:"p" default:"NOUN"`
	All   bool     `help:"Print every candidate instead of the resolved lemma"`
	Words []string `arg:"" help:"Word forms to lemmatize"`
}

func (c *LemmatizeCmd) Run() error {
	bundle, err := loadBundle(c.Lang)
	if err != nil {
		return err
	}
	eng := lemmy.New(bundle)
	pos := lemmy.PartOfSpeech(c.POS)

	for _, word := range c.Words {
		candidates := eng.Lemmatize(pos, word)
		if c.All {
			fmt.Printf("%s\t%s\n", word, strings.Join(candidates, ", "))
		} else {
			fmt.Printf("%s\t%s\n", word, lemmy.Disambiguate(word, candidates))
		}
	}
	return nil
}

// LanguagesCmd lists the embedded bundles.
type LanguagesCmd struct{}

func (c *LanguagesCmd) Run() error {
	langs := lemmy.Languages()
	codes := make([]string, 0, len(langs))
	for code := range langs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		fmt.Printf("%s\t%s\n", code, langs[code])
	}
	return nil
}

// InspectCmd prints size and tag-set statistics for one bundle.
type InspectCmd struct {
	Lang string `help:"Language code" short:"l" default:"da"`
}

func (c *InspectCmd) Run() error {
	bundle, err := loadBundle(c.Lang)
	if err != nil {
		return err
	}

	tags := bundle.TagSet()
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = string(tag)
	}

	fmt.Printf("language:   %s (%s)\n", bundle.Language, bundle.Name)
	fmt.Printf("folding:    %s\n", bundle.Folding)
	fmt.Printf("exceptions: %d\n", bundle.ExceptionCount())
	fmt.Printf("rules:      %d\n", bundle.RuleCount())
	fmt.Printf("tags:       %s\n", strings.Join(names, ", "))
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lemmy"),
		kong.Description("Rule and lookup based lemmatization."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
