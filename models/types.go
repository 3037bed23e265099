// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Domain types

type Question struct {
	ID          string    `json:"id"`
	Text        string    `json:"question_text"`
	PubDate     time.Time `json:"pub_date"`
	ChoiceCount int       `json:"choice_count"`
}

func (q Question) String() string {
	return q.Text
}

type Choice struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	Text       string `json:"choice_text"`
	Votes      int    `json:"votes"`
}

func (c Choice) String() string {
	return c.Text
}

// Request types

type CreateQuestionRequest struct {
	Text string `json:"question_text"`
	// RFC 3339; empty means now
	PubDate string `json:"pub_date,omitempty"`
}

type AddChoiceRequest struct {
	Text string `json:"choice_text"`
}

// Response types

type CreateQuestionResponse struct {
	QuestionID string    `json:"question_id"`
	PubDate    time.Time `json:"pub_date"`
}

type AddChoiceResponse struct {
	ChoiceID string `json:"choice_id"`
}

// AdminQuestion is a row in the admin question list
type AdminQuestion struct {
	Question
	WasPublishedRecently bool `json:"was_published_recently"`
}

type AdminQuestionList struct {
	Questions []AdminQuestion `json:"questions"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
