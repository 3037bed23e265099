// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types.

# Domain Types

  - Question: poll prompt with a publication date; ChoiceCount is filled in
    when questions are fetched from the store
  - Choice: selectable answer belonging to one question, with a vote tally

Both print as their text, so templates and logs can use them directly.

# Request Types

  - CreateQuestionRequest: question_text, optional pub_date (RFC 3339)
  - AddChoiceRequest: choice_text

# Response Types

  - CreateQuestionResponse: question_id, pub_date
  - AddChoiceResponse: choice_id
  - AdminQuestionList: every question with was_published_recently
  - ErrorResponse: error, message
*/
package models
