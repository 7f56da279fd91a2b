// Copyright 2015-2017 Piprate Limited
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ld

// Result is the single completion signal a public façade operation
// delivers: a value on success, xor an error on failure.
type Result struct {
	Value Value
	Err   error
}

// Processor is the public façade: the four document operations of
// spec.md §1, each a composition of (URL resolve -> core algorithm).
// Every operation clones its input defensively, so the caller's Value
// trees are never mutated.
//
// Every operation is externally async — it returns a channel on which
// exactly one Result is ever sent, matching spec.md §9(d)'s "contract is
// only that the completion event is delivered once".
type Processor struct {
	Options *ProcessorOptions
}

// NewProcessor creates a Processor. A nil opts uses NewProcessorOptions.
func NewProcessor(opts *ProcessorOptions) *Processor {
	if opts == nil {
		opts = NewProcessorOptions()
	}
	return &Processor{Options: opts}
}

func (p *Processor) resolver() ContextURLResolver {
	return p.Options.Resolver
}

func resultChan(v Value, err error) <-chan Result {
	out := make(chan Result, 1)
	out <- Result{Value: v, Err: err}
	close(out)
	return out
}

// Expand canonicalizes input: every property becomes an absolute IRI and
// every value becomes a fully qualified literal or node.
func (p *Processor) Expand(input Value) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)

		resolved, err := ResolveURLs(CloneDocument(input), p.resolver())
		if err != nil {
			out <- Result{Err: err}
			return
		}

		expanded, err := Expand(NewContext(), "", resolved)
		if err != nil {
			out <- Result{Err: err}
			return
		}

		if !expanded.IsSeq() {
			if expanded.IsNull() {
				expanded = SeqOf(nil)
			} else {
				expanded = Seq(expanded)
			}
		}

		out <- Result{Value: expanded}
	}()
	return out
}

// Compact applies activeContext to input, producing the shortest form
// the context permits.
func (p *Processor) Compact(input Value, activeContext Value) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)

		resolvedDoc, err := ResolveURLs(CloneDocument(input), p.resolver())
		if err != nil {
			out <- Result{Err: err}
			return
		}

		expanded, err := Expand(NewContext(), "", resolvedDoc)
		if err != nil {
			out <- Result{Err: err}
			return
		}

		resolvedCtx, err := ResolveURLs(CloneDocument(activeContext), p.resolver())
		if err != nil {
			out <- Result{Err: err}
			return
		}

		targetCtx, err := BuildContext(resolvedCtx)
		if err != nil {
			out <- Result{Err: err}
			return
		}

		compacted, err := Compact(targetCtx, "", expanded)
		if err != nil {
			out <- Result{Err: err}
			return
		}

		if p.Options.CompactArrays && compacted.IsSeq() {
			items := compacted.SeqItems()
			switch len(items) {
			case 0:
				compacted = NewMapValue()
			case 1:
				compacted = items[0]
			}
		}

		if compacted.IsSeq() {
			// An array result not collapsed above is wrapped under
			// the context's @graph alias, per the Compaction Algorithm's
			// final step.
			m := NewOMap()
			m.Set(CompactIRI(targetCtx, "@graph"), compacted)
			compacted = MapOf(m)
		}

		finalCtx := resolvedCtx
		if p.Options.Optimize {
			finalCtx = optimizeContext(finalCtx)
		}

		if compacted.IsMap() && !isEmptyContextValue(finalCtx) {
			compacted.Map().Set("@context", finalCtx)
		}

		out <- Result{Value: compacted}
	}()
	return out
}

// optimizeContext is a deliberate no-op: the source's _optimizeContext
// is a stub that returns its input, and the "optimize" flag is silently
// ignored (spec.md §9(a)). Do not invent a pruning algorithm here.
func optimizeContext(ctx Value) Value {
	return ctx
}

func isEmptyContextValue(v Value) bool {
	if v.IsNull() {
		return true
	}
	if v.IsMap() {
		return v.Map().Len() == 0
	}
	if v.IsSeq() {
		return len(v.SeqItems()) == 0
	}
	return false
}

// MergeContexts folds an ordered list of contexts into one effective
// context, resolving external context references first.
func (p *Processor) MergeContexts(ctx1, ctx2 Value) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)

		c1, err := ResolveURLs(CloneDocument(ctx1), p.resolver())
		if err != nil {
			out <- Result{Err: err}
			return
		}
		c2, err := ResolveURLs(CloneDocument(ctx2), p.resolver())
		if err != nil {
			out <- Result{Err: err}
			return
		}
		merged, err := MergeContextValues(c1, c2)
		if err != nil {
			out <- Result{Err: err}
			return
		}
		out <- Result{Value: merged}
	}()
	return out
}

// Frame is not implemented: framing is out of scope for this core (spec.md §1, §9(b)).
func (p *Processor) Frame(input Value, frame Value) <-chan Result {
	return resultChan(Value{}, NewJsonLdError(NotImplemented, "framing", nil))
}

// Normalize is not implemented: dataset normalization is out of scope for this core.
func (p *Processor) Normalize(input Value) <-chan Result {
	return resultChan(Value{}, NewJsonLdError(NotImplemented, "normalization", nil))
}

// EmitTriples is not implemented: RDF triple emission is out of scope for this core.
func (p *Processor) EmitTriples(input Value) <-chan Result {
	return resultChan(Value{}, NewJsonLdError(NotImplemented, "triple emission", nil))
}
