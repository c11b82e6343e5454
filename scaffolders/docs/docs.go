// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package docs scaffolds a documentation tree: an index page, one page
// per topic, and a yaml site configuration.
package docs

import (
	"fmt"
	"iter"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/skaff/internal/naming"
	"github.com/albertocavalcante/skaff/scaffolder"
)

// Scaffolder generates a documentation tree under docs/<prefix>/.
type Scaffolder struct {
	scaffolder.Base
}

// siteConfig is marshalled into site.yaml.
type siteConfig struct {
	Title string   `yaml:"title"`
	Index string   `yaml:"index"`
	Pages []string `yaml:"pages,omitempty"`
}

// New creates a docs scaffolder.
func New() *Scaffolder {
	return &Scaffolder{
		Base: scaffolder.NewBase([]scaffolder.Question{
			{Name: "title", Prompt: "Documentation site title", Kind: scaffolder.TypeString},
			{Name: "topics", Prompt: "Topics to create pages for", Kind: scaffolder.TypeStringList},
		}),
	}
}

// Name returns "docs".
func (s *Scaffolder) Name() string { return "docs" }

// Description returns a human-readable description.
func (s *Scaffolder) Description() string {
	return "Generate a documentation tree with an index, topic pages, and site config"
}

// FilesToCopy returns nil; the docs tree is fully generated.
func (s *Scaffolder) FilesToCopy() []scaffolder.CopyPair { return nil }

// GenerateFiles produces the index page, one page per topic, and the
// site configuration, in that order.
func (s *Scaffolder) GenerateFiles() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		dir := path.Join("docs", s.OutputName())
		title := s.StringAttr("title")
		topics := s.StringListAttr("topics")

		files := make([]string, len(topics))
		for i, topic := range topics {
			files[i] = topicFile(topic)
		}

		if !yield(path.Join(dir, "index.md"), s.indexPage(title, topics, files)) {
			return
		}

		for i, topic := range topics {
			page := fmt.Sprintf("# %s\n\nThis page documents %s for %s.\n",
				naming.Capitalize(topic), topic, title)
			if !yield(path.Join(dir, files[i]), page) {
				return
			}
		}

		if !yield(path.Join(dir, "site.yaml"), s.siteYAML(title, files)) {
			return
		}
	}
}

// topicFile maps a topic to its markdown file name. Topics are user
// input; anything outside [a-z0-9_-] is flattened to an underscore so
// every page stays inside the docs directory.
func topicFile(topic string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, strings.ToLower(topic))
	return name + ".md"
}

// indexPage renders the index with a link per topic.
func (s *Scaffolder) indexPage(title string, topics, files []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	for i, topic := range topics {
		fmt.Fprintf(&b, "- [%s](%s)\n", naming.Capitalize(topic), files[i])
	}
	return b.String()
}

// siteYAML marshals the site configuration.
func (s *Scaffolder) siteYAML(title string, pages []string) string {
	out, err := yaml.Marshal(siteConfig{
		Title: title,
		Index: "index.md",
		Pages: pages,
	})
	if err != nil {
		// siteConfig contains only strings; Marshal cannot fail.
		panic(fmt.Sprintf("docs: marshal site config: %v", err))
	}
	return string(out)
}
