package session

import "context"

// Outcome summarises how an operation ended.
type Outcome int

const (
	// Succeeded means every step ran cleanly.
	Succeeded Outcome = iota
	// Degraded means the operation took effect but a tolerated step failed,
	// typically leaving a principal-only identity.
	Degraded
	// Failed means a fatal step failed and state was left as it was.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case Degraded:
		return "degraded"
	default:
		return "failed"
	}
}

// Policy decides what a step failure does to the rest of the pipeline.
type Policy int

const (
	Fatal Policy = iota
	Tolerated
)

func (p Policy) String() string {
	if p == Tolerated {
		return "tolerated"
	}
	return "fatal"
}

const (
	StepCreateAccount  = "create-account"
	StepStartSession   = "start-session"
	StepEndSession     = "end-session"
	StepFetchPrincipal = "fetch-principal"
	StepCreateProfile  = "create-profile"
	StepReconcile      = "reconcile"
	StepUpdateProfile  = "update-profile"
)

// StepReport records one executed step. Err is nil when the step succeeded.
type StepReport struct {
	Name   string
	Policy Policy
	Err    error
}

// Result describes an operation: its outcome and the steps that ran, in
// order. Steps after a fatal failure are not listed.
type Result struct {
	Op      string
	Outcome Outcome
	Steps   []StepReport
}

// Step returns the report of the named step.
func (r Result) Step(name string) (StepReport, bool) {
	for _, s := range r.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return StepReport{}, false
}

// step is one entry of a pipeline: a name, its failure policy and the work.
type step struct {
	name   string
	policy Policy
	run    func(*flow, context.Context) error
}

// pipelines, as data. Changing a policy here is all it takes to revisit
// how a failure is handled.
var (
	bootstrapPipeline = []step{
		{StepFetchPrincipal, Fatal, (*flow).fetchPrincipal},
		{StepReconcile, Tolerated, (*flow).fetchProfile},
	}

	loginPipeline = []step{
		{StepStartSession, Fatal, (*flow).startSession},
		{StepFetchPrincipal, Fatal, (*flow).requirePrincipal},
		{StepReconcile, Tolerated, (*flow).fetchProfile},
	}

	// A start-session failure leaves the freshly created account behind
	// without a session. There is no compensating delete.
	signupPipeline = []step{
		{StepCreateAccount, Fatal, (*flow).createAccount},
		{StepStartSession, Fatal, (*flow).startSession},
		{StepFetchPrincipal, Fatal, (*flow).requirePrincipal},
		{StepCreateProfile, Tolerated, (*flow).createProfile},
		{StepReconcile, Tolerated, (*flow).fetchProfile},
	}
)

// run executes steps in order against f. It stops at the first fatal
// failure and returns it classified; tolerated failures are logged and turn
// the outcome into Degraded.
func (f *flow) run(ctx context.Context, op string, steps []step) (Result, error) {
	res := Result{Op: op, Outcome: Succeeded}

	for _, s := range steps {
		if f.stop {
			break
		}

		err := s.run(f, ctx)
		res.Steps = append(res.Steps, StepReport{Name: s.name, Policy: s.policy, Err: err})
		if err == nil {
			continue
		}

		if s.policy == Fatal {
			res.Outcome = Failed
			return res, classify(s.name, err)
		}

		res.Outcome = Degraded
		f.c.logger.Warn(ctx, "tolerated step failed", "op", op, "step", s.name, "error", err)
	}

	return res, nil
}
