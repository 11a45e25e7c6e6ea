package mcpserver

// SourceFormatContract describes the delimited source format the
// catalog is ingested from, for LLM consumers that generate or audit
// source rows.
const SourceFormatContract = `# Tooldex Catalog Source Format

The catalog is ingested from a flat text export: one record per line,
fields separated by ` + "`;`" + `, first line is a header.

## Columns (fixed order)

` + "```" + `
tool_name;tool_category;tool_link;overview;tool_description;target_audience;key_features;use_cases;tags;image_url
` + "```" + `

1. **tool_name** — REQUIRED. Display name; rows with an empty name are
   dropped (counted, not fatal). The URL slug is derived from it:
   lowercase, every character outside [a-z0-9] becomes ` + "`-`" + `,
   runs collapsed, edges trimmed.
2. **tool_category** — single free-text label; may be empty.
3. **tool_link** — optional external URL.
4. **overview** — short summary.
5. **tool_description** — long description.
6. **target_audience**, **key_features**, **use_cases**, **tags** —
   comma-delimited item lists. Items are trimmed; empty items dropped.
7. **image_url** — optional image URL.

## Rules

1. Two rows that derive the same slug conflict; the later row is
   rejected, never silently shadowed.
2. Missing trailing columns are treated as empty fields.
3. Blank lines are ignored.

## Known limitations

- There is no quoting. A field can never contain ` + "`;`" + `.
- List fields split on a bare ` + "`,`" + `: an item that itself
  contains a comma (e.g. "machine learning, NLP") is indistinguishable
  from two items. This is a fixed property of the format, not a bug to
  work around; do not introduce ` + "`;`" + ` or any other separator
  inside fields.

## Example

` + "```" + `
tool_name;tool_category;tool_link;overview;tool_description;target_audience;key_features;use_cases;tags;image_url
ChatGPT;AI Assistant;https://chat.openai.com;Conversational AI;A large language model assistant;Professionals, students;Natural conversation, text generation;Writing, programming;AI, chatbot;https://img.example.com/chatgpt.png
` + "```" + `
`
