package solo

import (
	"github.com/ib-77/tryiter/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

// Switch moves a success onto a new track via onSuccess. Failures are
// re-typed unchanged and onSuccess is not called.
func Switch[In any, Out any](input rop.Result[In],
	onSuccess func(r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In any, Out any](input rop.Result[In],
	onSuccess func(r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

// MapErr rewrites the error of a failure with convert. Successes and a nil
// convert leave input as is.
func MapErr[T any](input rop.Result[T], convert func(err error) error) rop.Result[T] {
	if input.IsSuccess() || convert == nil {
		return input
	}
	return input.WithErr(convert(input.Err()))
}

// AndThen is Switch with both the incoming failure and any failure produced
// by onSuccess passed through convert.
func AndThen[In any, Out any](input rop.Result[In],
	onSuccess func(r In) rop.Result[Out],
	convert func(err error) error) rop.Result[Out] {

	if input.IsFailure() {
		return rop.FailFrom[In, Out](MapErr(input, convert))
	}
	return MapErr(onSuccess(input.Result()), convert)
}

func Try[In any, Out any](input rop.Result[In],
	onTryExecute func(r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(input.Result())
		if err != nil {
			return rop.Fail[Out](err)
		}

		return rop.Success(out)
	}

	return rop.FailFrom[In, Out](input)
}

func Tee[T any](input rop.Result[T],
	onSuccess func(r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(input.Result())
	}

	return input
}

func Finally[In, Out any](input rop.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onError(input.Err())
}
