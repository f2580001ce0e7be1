package main

import "github.com/worm/worm/cmd/worm"

func main() { worm.Execute() }
