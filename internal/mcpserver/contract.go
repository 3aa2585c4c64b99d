package mcpserver

// StoryFormatContract describes the mission story shape that LLM consumers
// should follow when publishing or updating posts.
const StoryFormatContract = `# Mission Story Format Contract

Every mission story published through these tools MUST follow this structure.

## Fields

- id        OPTIONAL  opaque string; omit to create a new story, pass an
                      existing id to replace that story in place.
- title     REQUIRED  human-readable headline.
- date      REQUIRED  calendar date in YYYY-MM-DD form.
- category  REQUIRED  one of: "Upcoming", "Outreach", "Health Tip".
- excerpt   REQUIRED  one-sentence summary shown on listing cards.
- content   REQUIRED  long-form narrative; Markdown is rendered on the site.
- image     OPTIONAL  cover image URL or data URI; shown on cards and as the
                      fallback gallery slide.
- video     OPTIONAL  embeddable video URL or data URI.
- gallery   OPTIONAL  ordered list of image URLs/data URIs; insertion order
                      is display order.

## Rules

1. New stories are prepended to the list; edits keep their position.
2. Dates are not cross-validated, but non-canonical forms are normalized
   best-effort and may be rejected when unparseable.
3. Keep excerpts short; the full narrative belongs in content.
4. Prefer /assets/ URLs from the media library over large data URIs.
`
