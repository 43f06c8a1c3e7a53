package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"blog-api/internal/service"
)

var loremWords = strings.Fields(`lorem ipsum dolor sit amet consectetur adipiscing elit sed do
eiusmod tempor incididunt ut labore et dolore magna aliqua enim ad minim veniam quis nostrud
exercitation ullamco laboris nisi aliquip ex ea commodo consequat duis aute irure in
reprehenderit voluptate velit esse cillum fugiat nulla pariatur excepteur sint occaecat
cupidatat non proident sunt culpa qui officia deserunt mollit anim id est laborum`)

var tagNouns = []string{
	"river", "garden", "engine", "library", "compass", "harbor", "lantern", "meadow", "signal", "canvas",
	"orbit", "kettle", "summit", "bridge", "forest", "harvest", "mirror", "pixel", "thunder", "voyage",
}

type generator struct {
	rnd *rand.Rand
}

func newGenerator(rnd *rand.Rand) *generator {
	return &generator{rnd: rnd}
}

func (g *generator) post(n int) service.CreatePostInput {
	imageURL := fmt.Sprintf("https://picsum.photos/seed/post-%d/640/480", n)
	return service.CreatePostInput{
		Title:    g.title(),
		Content:  g.paragraphs(3),
		ImageURL: &imageURL,
		Tags:     strings.Join(g.tags(), ","),
	}
}

func (g *generator) words(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = loremWords[g.rnd.IntN(len(loremWords))]
	}
	return out
}

// title is a capitalised sentence without the trailing period.
func (g *generator) title() string {
	words := g.words(4 + g.rnd.IntN(5))
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ")
}

func (g *generator) sentence() string {
	return g.title() + "."
}

func (g *generator) paragraphs(n int) string {
	paras := make([]string, n)
	for i := range paras {
		sentences := make([]string, 3+g.rnd.IntN(4))
		for j := range sentences {
			sentences[j] = g.sentence()
		}
		paras[i] = strings.Join(sentences, " ")
	}
	return strings.Join(paras, "\n")
}

// tags picks a random non-empty subset of tagNouns in their original order.
func (g *generator) tags() []string {
	var picked []string
	for _, noun := range tagNouns {
		if g.rnd.IntN(4) == 0 {
			picked = append(picked, noun)
		}
	}
	if len(picked) == 0 {
		picked = append(picked, tagNouns[g.rnd.IntN(len(tagNouns))])
	}
	return picked
}
