// SPDX-License-Identifier: Apache-2.0

package docker

import (
	"fmt"
	"sort"
)

// Mount maps a host directory onto a fixed path inside the container.
type Mount struct {
	HostPath      string
	ContainerPath string
}

func (m Mount) String() string {
	return fmt.Sprintf("%s:%s", m.HostPath, m.ContainerPath)
}

// RunSpec describes the container created by the install operation.
type RunSpec struct {
	Image       string
	Name        string
	Labels      map[string]string
	Mounts      []Mount
	SecurityOpt []string
	Command     []string
}

// runArgs renders the spec as arguments to "docker run". The container is
// created detached with an interactive TTY so that the operator can attach
// to the build shell later. Label order is sorted for deterministic command
// lines.
func (s RunSpec) runArgs() []string {
	args := []string{"run", "-dit", "--name", s.Name}

	labels := make([]string, 0, len(s.Labels))
	for k, v := range s.Labels {
		labels = append(labels, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(labels)
	for _, l := range labels {
		args = append(args, "--label", l)
	}

	for _, opt := range s.SecurityOpt {
		args = append(args, "--security-opt", opt)
	}

	for _, m := range s.Mounts {
		args = append(args, "-v", m.String())
	}

	args = append(args, s.Image)
	args = append(args, s.Command...)

	return args
}
