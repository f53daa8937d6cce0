/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/unikit/unikit/pkg/cli"

func main() {
	cli.Execute()
}
