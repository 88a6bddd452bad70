// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cmd holds the cobra commands behind the idolboard binary.

	idolboard serve [flags]      - Run the API server (flags parsed by cliparse)
	idolboard gallery [flags]    - Print the aggregated gallery as YAML
	idolboard carousel [flags]   - Print successive carousel pages as YAML

The carousel command runs the engine on a manual scheduler, so it prints
any number of rotations without waiting for them.
*/
package cmd
