package main

import (
	"fmt"
	"os"

	"github.com/Kush-Singh-26/agora/builder/errs"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, report(err))
		os.Exit(1)
	}
}

func report(err error) string {
	if cat, ok := errs.CategoryOf(err); ok {
		return fmt.Sprintf("❌ %s error: %v", cat, err)
	}
	return fmt.Sprintf("❌ %v", err)
}
