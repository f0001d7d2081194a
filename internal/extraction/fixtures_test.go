package extraction

const sampleCV = `Jane Doe
Berlin, Germany | jane.doe@example.com | +49 151 2345 6789
linkedin.com/in/janedoe | github.com/janedoe

Summary
Backend engineer with strong communication and leadership skills.

Experience
Senior Engineer, Acme GmbH, Jan 2020 - Present
Led the migration to Kubernetes and developed services in Go and Python.
Implemented CI/CD with GitHub Actions and mentored two engineers.

Software Engineer, Beta AG, 2016 - 2020
Developed REST API endpoints with Django and PostgreSQL.
Optimized queries and automated deployments with Docker.

Education
Master of Science in Computer Science, Technical University of Munich, 2014 - 2016
Bachelor of Science in Informatics, University of Stuttgart, 2011 - 2014

Skills
Go, Python, JS, k8s, Postgres, React Native, teamwork, problem solving
`
