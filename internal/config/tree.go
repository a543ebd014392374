package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTemplateNotFound is returned by Find for a path that names no leaf.
var ErrTemplateNotFound = errors.New("template not found")

// Walk calls fn for every node of the tree in menu order, parents before
// children. path is the slash-joined chain of names leading to the node.
// Walk stops at the first error fn returns.
func Walk(templates []Template, fn func(path string, depth int, t *Template) error) error {
	return walk(templates, "", 0, fn)
}

func walk(level []Template, parent string, depth int, fn func(string, int, *Template) error) error {
	for i := range level {
		t := &level[i]
		path := joinPath(parent, t.Name)
		if err := fn(path, depth, t); err != nil {
			return err
		}
		if len(t.Children) > 0 {
			if err := walk(t.Children, path, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Leaf is a fetchable template together with its menu path.
type Leaf struct {
	Path     string
	Template *Template
}

// Leaves returns every leaf of the tree in menu order.
func Leaves(templates []Template) []Leaf {
	var leaves []Leaf
	_ = Walk(templates, func(path string, _ int, t *Template) error {
		if t.IsLeaf() {
			leaves = append(leaves, Leaf{Path: path, Template: t})
		}
		return nil
	})
	return leaves
}

// Find resolves a slash-separated menu path such as "Vue/vitesse" to a leaf.
func Find(templates []Template, path string) (*Template, error) {
	names := strings.Split(strings.Trim(path, "/"), "/")
	level := templates
	for i, name := range names {
		var next *Template
		for j := range level {
			if level[j].Name == name {
				next = &level[j]
				break
			}
		}
		if next == nil {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		if i == len(names)-1 {
			if !next.IsLeaf() {
				return nil, fmt.Errorf("%w: %s is a group", ErrTemplateNotFound, path)
			}
			return next, nil
		}
		level = next.Children
	}
	return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
}
