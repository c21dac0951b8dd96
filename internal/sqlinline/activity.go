package sqlinline

const QCreateActivityTable = `--sql 464aaed5-7b06-4a7c-af95-fc56d9f5b1f8
create table if not exists activity (
  id bigint generated always as identity primary key,
  date date not null,
  user_id text not null,
  course_id text not null,
  lesson_completed boolean not null,
  time_spent int not null check (time_spent >= 5),
  device_type text not null,
  subscription_type text not null check (subscription_type in ('free', 'premium'))
);
`

const QCreateActivityDateIndex = `--sql e10a16e3-af2b-46e8-a150-ef59389e4511
create index if not exists idx_activity_date on activity (date);
`

const QCreateActivityUserIndex = `--sql e07d2cad-2bc6-4024-829c-cad39764f581
create index if not exists idx_activity_user on activity (user_id, date);
`

const QTruncateActivity = `--sql 5626fe96-7eb1-44ab-ba8b-b776c06cf83b
truncate table activity;
`
