package test

const initSQL = `
CREATE TABLE public.users
(
    id        BIGSERIAL PRIMARY KEY,
    user_name VARCHAR NOT NULL
);

CREATE TABLE public.muscle_group
(
    id   BIGSERIAL PRIMARY KEY,
    name VARCHAR NOT NULL
);

CREATE TABLE public.split
(
    id   BIGSERIAL PRIMARY KEY,
    name VARCHAR NOT NULL
);

CREATE TABLE public.exercise
(
    id              BIGSERIAL PRIMARY KEY,
    name            VARCHAR NOT NULL,
    muscle_group_id BIGINT REFERENCES public.muscle_group (id)
);

CREATE TABLE public.workout
(
    id         BIGSERIAL PRIMARY KEY,
    user_id    BIGINT                      NOT NULL REFERENCES public.users (id),
    created_at TIMESTAMP WITHOUT TIME ZONE NOT NULL,
    split_id   BIGINT REFERENCES public.split (id)
);

CREATE INDEX ix_workout_user_created_at ON public.workout (user_id, created_at);

CREATE TABLE public.workout_exercise
(
    id          BIGSERIAL PRIMARY KEY,
    workout_id  BIGINT NOT NULL REFERENCES public.workout (id),
    exercise_id BIGINT NOT NULL REFERENCES public.exercise (id)
);

CREATE TABLE public.exercise_result
(
    id                  BIGSERIAL PRIMARY KEY,
    workout_exercise_id BIGINT           NOT NULL REFERENCES public.workout_exercise (id),
    reps                INTEGER          NOT NULL,
    set_number          INTEGER          NOT NULL,
    weight              DOUBLE PRECISION NOT NULL
);
`
