package ui

import runlogservice "github.com/nbstrap/nbstrap/internal/services/runlogService"

type runsLoadedMsg []runlogservice.RunRecord

type stepsLoadedMsg []runlogservice.StepRecord
