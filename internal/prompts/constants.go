// Package prompts contains all prompt strings and descriptions used by the tools.
package prompts

// Markdown tool prompts
const (
	// SplitMarkdownToolDescription is the description for the split_markdown tool
	SplitMarkdownToolDescription = `Splits a markdown document into one file per heading.

- mode "chapters" splits on "## " headings. out_dir is required; files are named NN-slug.md by position (01-intro.md, 02-setup.md).
- mode "sections" splits on "### " headings. out_dir defaults to a directory beside the source named after it (docs/04-screens.md splits into docs/04-screens/). Numbered headings such as "### 4.2 Screen List" give 4.2-screen-list.md; others fall back to NN-slug.md.

Usage notes:
- Each file holds the heading line through the line before the next heading of the same level, byte for byte. Text before the first heading is not written.
- Deeper headings stay inside their chunk. A document without a matching heading is an error and nothing is written.
- Existing files with the same name are overwritten. Files from earlier runs are never deleted.
- Set dry_run to list the files that would be written without touching the disk.
- Relative paths resolve against the server's working directory.`

	// OutlineMarkdownToolDescription is the description for the outline_markdown tool
	OutlineMarkdownToolDescription = `Lists the headings of a markdown document as a CommonMark parser sees them, with their level and line number.

Use it before split_markdown to check which headings a split will produce. Headings inside fenced code blocks are not listed. Setext headings are included.
Set format to "json" for a machine-readable list.`
)

// Asset tool prompts
const (
	// FixIconBordersToolDescription is the description for the fix_icon_borders tool
	FixIconBordersToolDescription = `Makes the outer border of icon images fully transparent, in place.

- dir defaults to "images", pattern to "ic_icon*.png", border to 20 pixels.
- Every matched file is rewritten as PNG at its original size; interior pixels are unchanged.
- A file that cannot be decoded, or is smaller than twice the border, is reported and skipped; the rest are still processed.`

	// GenerateDensitiesToolDescription is the description for the generate_densities tool
	GenerateDensitiesToolDescription = `Writes density-specific copies of icon images into an Android resource tree.

- source_dir defaults to "images", pattern to "ic_icon*", res_dir to "pursue-app/app/src/main/res", base_size to 64.
- Each icon is resized to a square for every bucket: drawable-mdpi (x1), drawable-hdpi (x1.5), drawable-xhdpi (x2), drawable-xxhdpi (x3), drawable-xxxhdpi (x4).
- Output files keep the source name with a .png extension. Bucket directories are created as needed.
- A file that cannot be decoded is reported and skipped.`
)
