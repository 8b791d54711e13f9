// Package urls provides centralized constants for every external link and
// contact address shown on the blog.
//
// All values are defined here as exported constants so they can be updated
// in a single location. The siteconfig package assembles them into the
// records handed to consumers.
//
// Usage:
//
//	import "github.com/based-ghost/codeblog/internal/urls"
//
//	fmt.Printf("Source code: %s\n", urls.GitHub)
package urls
