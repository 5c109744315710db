// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import "slices"

type Status string

const (
	StatusPending     Status = "PENDING"
	StatusReviewed    Status = "REVIEWED"
	StatusShortlisted Status = "SHORTLISTED"
	StatusRejected    Status = "REJECTED"
)

var statuses = []Status{StatusPending, StatusReviewed, StatusShortlisted, StatusRejected}

func (s Status) Valid() bool {
	return slices.Contains(statuses, s)
}

// Withdrawable 只有还没有处理的投递可以撤回
func (s Status) Withdrawable() bool {
	return s == StatusPending
}

type Application struct {
	ID          int64
	JobID       int64
	CandidateID int64
	ResumeID    int64
	Status      Status
	CoverLetter string
	FullName    string
	Email       string
	Phone       string
	Linkedin    string
	Portfolio   string
	// Notes 招聘方的备注，候选人看不到
	Notes string
	Ctime int64
	Utime int64
	// Job 候选人查看自己的投递时附带
	Job *JobSummary
}

type JobSummary struct {
	ID          int64
	Title       string
	CompanyName string
	Status      string
}
