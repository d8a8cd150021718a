package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// FindRepository finds the Aikido repository of a GitLab project.
// An exact name match wins; otherwise the first repository whose name
// contains the project name is used, since Aikido may prefix names with
// the group path.
func FindRepository(repos []*CodeRepository, name string) (*CodeRepository, error) {
	if name == "" {
		return nil, goerr.New("repository name is required")
	}

	for _, repo := range repos {
		if repo.Name == name {
			return repo, nil
		}
	}

	for _, repo := range repos {
		if strings.Contains(repo.Name, name) {
			return repo, nil
		}
	}

	return nil, goerr.Wrap(ErrRepositoryNotFound, "no Aikido repository matches project",
		goerr.V("name", name),
		goerr.V("candidates", len(repos)))
}
