package artifact

// JSON Schemas for the durable intermediate artifacts. Validation runs on
// read so a truncated or hand-edited artifact fails fast with a diagnostic
// instead of feeding garbage into the next stage.

const booksSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["title", "author", "chapters"],
    "properties": {
      "title": {"type": "string", "minLength": 1},
      "author": {"type": "string", "minLength": 1},
      "filePath": {"type": "string"},
      "chapters": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["id", "title", "order", "content"],
          "properties": {
            "id": {"type": "string", "minLength": 1},
            "title": {"type": "string"},
            "order": {"type": "integer", "minimum": 0},
            "content": {"type": "string", "minLength": 1}
          }
        }
      }
    }
  }
}`

const postsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["key", "bookTitle", "bookAuthor", "chapterTitle", "chapterId", "chapterOrder", "postIndex", "content", "type"],
    "properties": {
      "key": {"type": "string", "pattern": "^[0-9a-f]{16}$"},
      "bookTitle": {"type": "string", "minLength": 1},
      "bookAuthor": {"type": "string"},
      "chapterTitle": {"type": "string"},
      "chapterId": {"type": "string", "minLength": 1},
      "chapterOrder": {"type": "integer", "minimum": 0},
      "postIndex": {"type": "integer", "minimum": 0},
      "content": {"type": "string", "minLength": 1, "maxLength": 150},
      "type": {"type": "string", "enum": ["learning"]}
    }
  }
}`

const questionsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["key", "postKey", "title", "questionText", "answers", "type"],
    "properties": {
      "key": {"type": "string", "pattern": "^[0-9a-f]{16}$"},
      "postKey": {"type": "string", "pattern": "^[0-9a-f]{16}$"},
      "title": {"type": "string"},
      "questionText": {"type": "string"},
      "bookTitle": {"type": "string"},
      "chapterTitle": {"type": "string"},
      "answers": {
        "type": "array",
        "minItems": 4,
        "maxItems": 4,
        "items": {
          "type": "object",
          "required": ["text", "isCorrect"],
          "properties": {
            "text": {"type": "string"},
            "isCorrect": {"type": "boolean"}
          }
        }
      },
      "type": {"type": "string", "enum": ["multiple-choice"]}
    }
  }
}`
